package syncplan_test

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/url"
	"time"

	"github.com/satelliteqe/robotest/e2e/framework"
	"github.com/satelliteqe/robotest/lib/api"
	"github.com/satelliteqe/robotest/lib/constants"
	"github.com/satelliteqe/robotest/lib/entities"
	"github.com/satelliteqe/robotest/lib/faux"
	"github.com/satelliteqe/robotest/lib/orm"
	"github.com/satelliteqe/robotest/lib/wait"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// syncDate renders t the way the server reports sync dates
func syncDate(t time.Time) string {
	return t.UTC().Format(constants.SyncDateFormat)
}

var _ = framework.RoboDescribe("Sync plans", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
		svc    *entities.Service
		data   = func() []string { return framework.TestContext.Data.ValidDataList() }
		org    *orm.Entity
	)

	newPlan := func(values map[string]interface{}) *orm.Entity {
		plan := entities.SyncPlan.New().MustSet("organization", org)
		Expect(plan.SetValues(values)).To(Succeed())
		return plan
	}

	create := func(values map[string]interface{}) *orm.Entity {
		plan, err := svc.Create(ctx, newPlan(values))
		Expect(err).NotTo(HaveOccurred())
		return plan
	}

	newProduct := func() *orm.Entity {
		product, err := svc.Create(ctx, entities.Product.New().MustSet("organization", org))
		Expect(err).NotTo(HaveOccurred())
		return product
	}

	expectProducts := func(plan *orm.Entity, count int) {
		current, err := svc.Read(ctx, plan)
		Expect(err).NotTo(HaveOccurred())
		Expect(current.RelatedList("products")).To(HaveLen(count))
	}

	expectDeleted := func(plan *orm.Entity) {
		Expect(svc.Delete(ctx, plan)).To(Succeed())
		_, err := svc.Read(ctx, plan)
		Expect(api.IsHTTPError(err)).To(BeTrue(), "expected HTTP error, got %v", err)
	}

	BeforeEach(func() {
		framework.RunOnlyOn("sat")
		ctx, cancel = framework.NewContext()
		svc = framework.TestContext.Entities
		var err error
		org, err = svc.Create(ctx, framework.NewOrganization())
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		cancel()
	})

	Context("routes", func() {
		framework.Tier1("returns the same plans through both routes", func() {
			create(nil)
			client := framework.TestContext.Client
			var flat, nested struct {
				Results []json.RawMessage `json:"results"`
			}
			Expect(client.Get(ctx, "katello/api/v2/sync_plans",
				url.Values{"organization_id": {fmt.Sprint(org.ID())}}, &flat)).To(Succeed())
			Expect(client.Get(ctx, fmt.Sprintf("katello/api/v2/organizations/%v/sync_plans", org.ID()),
				nil, &nested)).To(Succeed())
			Expect(flat.Results).To(Equal(nested.Results))
		})
	})

	Context("create", func() {
		framework.Tier1("creates with enabled and disabled state", func() {
			for _, enabled := range []bool{false, true} {
				By(fmt.Sprintf("enabled=%v", enabled))
				plan := create(map[string]interface{}{"enabled": enabled})
				Expect(plan.Bool("enabled")).To(Equal(enabled))
			}
		})

		framework.Tier1("creates with a name", func() {
			for _, name := range data() {
				By(name)
				plan := create(map[string]interface{}{"name": name})
				Expect(plan.Str("name")).To(Equal(name))
			}
		})

		framework.Tier1("creates with a description", func() {
			for _, description := range data() {
				By(description)
				plan := create(map[string]interface{}{"description": description})
				Expect(plan.Str("description")).To(Equal(description))
			}
		})

		framework.Tier1("creates with an interval", func() {
			for _, interval := range framework.TestContext.Data.ValidSyncIntervals() {
				By(interval)
				plan := create(map[string]interface{}{"interval": interval})
				Expect(plan.Str("interval")).To(Equal(interval))
			}
		})

		framework.Tier1("creates with a sync date", func() {
			for _, date := range framework.TestContext.Data.ValidSyncDates(time.Now()) {
				By(date.String())
				plan := create(map[string]interface{}{"sync_date": date})
				Expect(syncDate(plan.Time("sync_date"))).To(Equal(syncDate(date)))
			}
		})

		framework.Tier1("rejects invalid names", func() {
			for _, name := range framework.TestContext.Data.InvalidValuesList(constants.InterfaceAPI) {
				By(fmt.Sprintf("%q", name))
				_, err := svc.CreateRaw(ctx, filled(ctx, svc, newPlan(map[string]interface{}{"name": name})))
				Expect(api.IsHTTPError(err)).To(BeTrue(), "expected HTTP error, got %v", err)
			}
		})

		framework.Tier1("rejects invalid intervals", func() {
			for _, interval := range framework.TestContext.Data.InvalidSyncIntervals() {
				By(fmt.Sprintf("%q", interval))
				plan := filled(ctx, svc, newPlan(map[string]interface{}{"interval": interval}))
				_, err := svc.CreateRaw(ctx, plan)
				Expect(api.IsHTTPError(err)).To(BeTrue(), "expected HTTP error, got %v", err)
			}
		})

		framework.Tier1("requires an interval", func() {
			plan := filled(ctx, svc, newPlan(nil))
			plan.Unset("interval")
			_, err := svc.CreateRaw(ctx, plan)
			Expect(api.IsHTTPError(err)).To(BeTrue(), "expected HTTP error, got %v", err)
		})
	})

	Context("update", func() {
		framework.Tier1("updates the enabled state", func() {
			for _, enabled := range []bool{false, true} {
				By(fmt.Sprintf("enabled=%v", enabled))
				plan := create(map[string]interface{}{"enabled": !enabled})
				plan.MustSet("enabled", enabled)
				updated, err := svc.Update(ctx, plan, "enabled")
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Bool("enabled")).To(Equal(enabled))
			}
		})

		framework.Tier1("updates the name", func() {
			plan := create(nil)
			for _, name := range data() {
				By(name)
				plan.MustSet("name", name)
				updated, err := svc.Update(ctx, plan, "name")
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Str("name")).To(Equal(name))
			}
		})

		framework.Tier1("updates the description", func() {
			plan := create(map[string]interface{}{
				"description": framework.TestContext.Data.Generator().MustString(faux.Alpha, 10),
			})
			for _, description := range data() {
				By(description)
				plan.MustSet("description", description)
				updated, err := svc.Update(ctx, plan, "description")
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Str("description")).To(Equal(description))
			}
		})

		framework.Tier1("updates the interval", func() {
			for _, interval := range framework.TestContext.Data.ValidSyncIntervals() {
				By(interval)
				plan := create(map[string]interface{}{"interval": otherInterval(interval)})
				plan.MustSet("interval", interval)
				updated, err := svc.Update(ctx, plan, "interval")
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Str("interval")).To(Equal(interval))
			}
		})

		framework.Tier1("updates the sync date", func() {
			plan := create(map[string]interface{}{"sync_date": time.Now().Add(10 * 24 * time.Hour)})
			for _, date := range framework.TestContext.Data.ValidSyncDates(time.Now()) {
				By(date.String())
				plan.MustSet("sync_date", date)
				updated, err := svc.Update(ctx, plan, "sync_date")
				Expect(err).NotTo(HaveOccurred())
				Expect(syncDate(updated.Time("sync_date"))).To(Equal(syncDate(date)))
			}
		})

		framework.Tier1("rejects invalid names", func() {
			plan := create(nil)
			for _, name := range framework.TestContext.Data.InvalidValuesList(constants.InterfaceAPI) {
				By(fmt.Sprintf("%q", name))
				plan.MustSet("name", name)
				_, err := svc.Update(ctx, plan, "name")
				Expect(api.IsHTTPError(err)).To(BeTrue(), "expected HTTP error, got %v", err)
			}
		})

		framework.Tier1("rejects invalid intervals", func() {
			plan := create(nil)
			for _, interval := range framework.TestContext.Data.InvalidValuesList(constants.InterfaceAPI) {
				By(fmt.Sprintf("%q", interval))
				plan.MustSet("interval", interval)
				_, err := svc.Update(ctx, plan, "interval")
				Expect(api.IsHTTPError(err)).To(BeTrue(), "expected HTTP error, got %v", err)
			}
		})
	})

	Context("products", func() {
		framework.Tier2("adds a product", func() {
			plan := create(nil)
			Expect(svc.AddProducts(ctx, plan, newProduct())).To(Succeed())
			expectProducts(plan, 1)
		})

		framework.Tier2("adds two products", func() {
			plan := create(nil)
			Expect(svc.AddProducts(ctx, plan, newProduct(), newProduct())).To(Succeed())
			expectProducts(plan, 2)
		})

		framework.Tier2("removes a product", func() {
			framework.SkipIfBugOpen("bugzilla", 1199150)
			plan := create(nil)
			first, second := newProduct(), newProduct()
			Expect(svc.AddProducts(ctx, plan, first, second)).To(Succeed())
			expectProducts(plan, 2)
			Expect(svc.RemoveProducts(ctx, plan, first)).To(Succeed())
			current, err := svc.Read(ctx, plan)
			Expect(err).NotTo(HaveOccurred())
			Expect(current.RelatedIDs("products")).To(ConsistOf(second.ID()))
		})

		framework.Tier2("removes both products", func() {
			plan := create(nil)
			first, second := newProduct(), newProduct()
			Expect(svc.AddProducts(ctx, plan, first, second)).To(Succeed())
			Expect(svc.RemoveProducts(ctx, plan, first, second)).To(Succeed())
			expectProducts(plan, 0)
		})

		framework.Tier2("repeatedly adds and removes a product", func() {
			framework.SkipIfBugOpen("bugzilla", 1199150)
			plan := create(nil)
			product := newProduct()
			for i := 0; i < 5; i++ {
				Expect(svc.AddProducts(ctx, plan, product)).To(Succeed())
				expectProducts(plan, 1)
				Expect(svc.RemoveProducts(ctx, plan, product)).To(Succeed())
				expectProducts(plan, 0)
			}
		})
	})

	Context("synchronize", func() {
		var syncTypes = []string{"erratum", "rpm", "package_group"}

		framework.Stubbed("does not sync a custom product at the current sync date")

		framework.Stubbed("syncs a custom product at the current sync date")

		framework.Tier4("syncs a custom product at a future sync date", func() {
			delay := 10 * time.Minute
			plan := create(map[string]interface{}{
				"enabled":   true,
				"sync_date": time.Now().UTC().Add(delay),
			})
			product := newProduct()
			repo, err := svc.Create(ctx, entities.Repository.New().MustSet("product", product))
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.ValidateRepoContent(ctx, repo, syncTypes, false, 0)).To(Succeed())
			Expect(svc.AddProducts(ctx, plan, product)).To(Succeed())

			By("waiting half of the sync delay")
			Expect(wait.Sleep(ctx, delay/2)).To(Succeed())
			Expect(svc.ValidateRepoContent(ctx, repo, syncTypes, false, 0)).To(Succeed())

			By("waiting for the sync date")
			Expect(wait.Sleep(ctx, delay/2)).To(Succeed())
			Expect(svc.ValidateRepoContent(ctx, repo, syncTypes, true, 0)).To(Succeed())
		})

		framework.Stubbed("syncs a Red Hat product at the current sync date")
	})

	Context("delete", func() {
		framework.Tier2("deletes a plan with one product", func() {
			plan := create(nil)
			Expect(svc.AddProducts(ctx, plan, newProduct())).To(Succeed())
			expectDeleted(plan)
		})

		framework.Tier2("deletes a plan with two products", func() {
			plan := create(nil)
			Expect(svc.AddProducts(ctx, plan, newProduct(), newProduct())).To(Succeed())
			expectDeleted(plan)
		})

		framework.Tier2("deletes a plan with a synced product", func() {
			plan := create(nil)
			product := newProduct()
			_, err := svc.Create(ctx, entities.Repository.New().MustSet("product", product))
			Expect(err).NotTo(HaveOccurred())
			Expect(svc.AddProducts(ctx, plan, product)).To(Succeed())
			Expect(svc.SyncProduct(ctx, product)).To(Succeed())
			expectDeleted(plan)
		})
	})
})

// filled returns plan with every required field set
func filled(ctx context.Context, svc *entities.Service, plan *orm.Entity) *orm.Entity {
	Expect(svc.CreateMissing(ctx, plan)).To(Succeed())
	return plan
}

// otherInterval returns a random interval other than interval
func otherInterval(interval string) string {
	var others []string
	for _, i := range constants.SyncIntervals {
		if i != interval {
			others = append(others, i)
		}
	}
	return others[rand.Intn(len(others))]
}
