package product_test

import (
	"context"
	"fmt"

	"github.com/satelliteqe/robotest/e2e/framework"
	"github.com/satelliteqe/robotest/lib/entities"
	"github.com/satelliteqe/robotest/lib/faux"
	"github.com/satelliteqe/robotest/lib/orm"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// attributes returns single field datapoints for name and description
func attributes(gen *faux.Generator) []map[string]interface{} {
	var out []map[string]interface{}
	for _, field := range []string{"name", "description"} {
		for _, kind := range []faux.Kind{faux.Alphanumeric, faux.Alpha, faux.CJK, faux.Latin1, faux.Numeric, faux.UTF8} {
			length := gen.Integer(1, 255)
			if kind == faux.CJK || kind == faux.UTF8 {
				length = gen.Integer(1, 85)
			}
			out = append(out, map[string]interface{}{field: gen.MustString(kind, length)})
		}
	}
	return out
}

var _ = framework.RoboDescribe("Products", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
		svc    *entities.Service
		org    *orm.Entity
	)

	expectAttributes := func(product *orm.Entity, attrs map[string]interface{}) {
		json, err := svc.ReadJSON(ctx, product)
		Expect(err).NotTo(HaveOccurred())
		for name, value := range attrs {
			Expect(json).To(HaveKeyWithValue(name, value))
		}
	}

	BeforeEach(func() {
		ctx, cancel = framework.NewContext()
		svc = framework.TestContext.Entities
		var err error
		org, err = svc.Create(ctx, framework.NewOrganization())
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		cancel()
	})

	framework.Tier1("creates a product with a name or description", func() {
		for _, attrs := range attributes(framework.TestContext.Data.Generator()) {
			By(fmt.Sprint(attrs))
			product := entities.Product.New().MustSet("organization", org)
			Expect(product.SetValues(attrs)).To(Succeed())
			created, err := svc.Create(ctx, product)
			Expect(err).NotTo(HaveOccurred())
			expectAttributes(created, attrs)
		}
	})

	framework.Tier1("creates a product with a GPG key", func() {
		key, err := svc.Create(ctx, entities.GPGKey.New().MustSet("organization", org))
		Expect(err).NotTo(HaveOccurred())
		product, err := svc.Create(ctx, entities.Product.New().
			MustSet("organization", org).
			MustSet("gpg_key", key))
		Expect(err).NotTo(HaveOccurred())

		json, err := svc.ReadJSON(ctx, product)
		Expect(err).NotTo(HaveOccurred())
		Expect(json).To(HaveKeyWithValue("gpg_key_id", BeNumerically("==", key.ID())))
	})

	framework.Tier1("updates the name or description of a product", func() {
		product, err := svc.Create(ctx, entities.Product.New().MustSet("organization", org))
		Expect(err).NotTo(HaveOccurred())
		for _, attrs := range attributes(framework.TestContext.Data.Generator()) {
			By(fmt.Sprint(attrs))
			Expect(product.SetValues(attrs)).To(Succeed())
			var names []string
			for name := range attrs {
				names = append(names, name)
			}
			_, err := svc.Update(ctx, product, names...)
			Expect(err).NotTo(HaveOccurred())
			expectAttributes(product, attrs)
		}
	})
})
