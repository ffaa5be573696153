package contentview_test

import (
	"context"
	"fmt"

	"github.com/satelliteqe/robotest/e2e/framework"
	"github.com/satelliteqe/robotest/e2e/uimodel"
	"github.com/satelliteqe/robotest/e2e/uimodel/contentview"
	"github.com/satelliteqe/robotest/e2e/uimodel/defaults"
	"github.com/satelliteqe/robotest/e2e/uimodel/factory"
	"github.com/satelliteqe/robotest/e2e/uimodel/locators"
	"github.com/satelliteqe/robotest/lib/constants"
	"github.com/satelliteqe/robotest/lib/entities"
	"github.com/satelliteqe/robotest/lib/faux"
	"github.com/satelliteqe/robotest/lib/lifecycle"
	"github.com/satelliteqe/robotest/lib/orm"

	"github.com/gravitational/trace"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// Packages of constants.FakeYumRepo
const (
	packageCow  = "cow"
	packageBear = "bear"
)

var _ = framework.RoboDescribe("Content views", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
		svc    *entities.Service
		org    *orm.Entity
		cv     contentview.ContentViews
	)

	mustCreate := func(e *orm.Entity) *orm.Entity {
		created, err := svc.Create(ctx, e)
		Expect(err).NotTo(HaveOccurred())
		return created
	}

	// syncedRepo creates a product with a synced yum repository in org
	syncedRepo := func(org *orm.Entity, name string) *orm.Entity {
		product := mustCreate(entities.Product.New().MustSet("organization", org))
		repo := mustCreate(entities.Repository.New().
			MustSet("name", name).
			MustSet("product", product).
			MustSet("unprotected", true))
		Expect(svc.SyncRepository(ctx, repo)).To(Succeed())
		return repo
	}

	makeView := func(name string) {
		Expect(factory.MakeContentView(ui.Session, org.Str("name"), name, "")).To(Succeed())
		_, err := cv.Search(name)
		Expect(err).NotTo(HaveOccurred(), "content view %q not found in %v", name, org.Str("name"))
	}

	// makeEnvironments creates a path of environments following Library
	// and records it in the ledger
	makeEnvironments := func(ledger *lifecycle.Ledger, count int) []string {
		prior := constants.Library
		var envs []string
		for i := 0; i < count; i++ {
			env := framework.UniqueName()
			Expect(factory.MakeLifecycleEnvironment(ui.Session, org.Str("name"), env, prior)).To(Succeed())
			environments, err := ui.GoToLifecycleEnvironments()
			Expect(err).NotTo(HaveOccurred())
			_, err = environments.Search(env)
			Expect(err).NotTo(HaveOccurred(), "environment %q not found", env)
			Expect(ledger.AddEnvironment(env, prior)).To(Succeed())
			envs = append(envs, env)
			prior = env
		}
		return envs
	}

	addRepo := func(view string) string {
		repo := framework.UniqueName()
		syncedRepo(org, repo)
		Expect(cv.AddRemoveRepos(view, []string{repo}, true)).To(Succeed())
		Expect(cv.CheckSuccess()).To(BeTrue(), "repository %v was not added", repo)
		return repo
	}

	publish := func(view string, ledger *lifecycle.Ledger) string {
		version, err := cv.Publish(view, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(version).To(Equal(ledger.Publish()))
		return version
	}

	promote := func(view, version, env string, ledger *lifecycle.Ledger) {
		Expect(cv.Promote(view, version, env)).To(Succeed())
		Expect(ledger.Promote(version, env, false)).To(Succeed())
	}

	expectEnvironments := func(version string, ledger *lifecycle.Ledger) {
		envs, err := cv.VersionEnvironments(version)
		Expect(err).NotTo(HaveOccurred())
		Expect(envs).To(ConsistOf(ledger.Environments(version)))
	}

	BeforeEach(func() {
		framework.RunOnlyOn("sat")
		ctx, cancel = framework.NewContext()
		svc = framework.TestContext.Entities
		org = mustCreate(framework.NewOrganization())
		var err error
		cv, err = ui.GoToContentViews()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		cancel()
	})

	Context("create", func() {
		framework.Tier1("creates content views with valid names", func() {
			for _, name := range framework.TestContext.Data.ValidDataList() {
				By(name)
				makeView(name)
			}
		})

		framework.Tier1("refuses content views with invalid names", func() {
			for _, name := range framework.TestContext.Data.InvalidNamesList() {
				By(name)
				Expect(factory.MakeContentView(ui.Session, org.Str("name"), name, "")).To(Succeed())
				Expect(cv.HasError()).To(BeTrue(), "no validation error for %q", name)
				_, err := cv.Search(name)
				Expect(trace.IsNotFound(err)).To(BeTrue(), "expected %q to be missing, got %v", name, err)
			}
		})

		framework.Tier2("publishes and promotes a content view", func() {
			ledger := lifecycle.NewLedger()
			envs := makeEnvironments(ledger, 1)
			view := framework.UniqueName()
			makeView(view)
			addRepo(view)
			version := publish(view, ledger)
			promote(view, version, envs[0], ledger)
			Expect(cv.CheckSuccess()).To(BeTrue())
			expectEnvironments(version, ledger)
		})
	})

	Context("filters", func() {
		framework.Tier2("removes a filter", func() {
			view := framework.UniqueName()
			filter := framework.UniqueName()
			makeView(view)
			Expect(cv.AddFilter(view, filter, contentview.ContentPackage, constants.FilterExclude)).To(Succeed())
			Expect(cv.RemoveFilter(view, []string{filter})).To(Succeed())
			_, err := cv.SearchFilter(view, filter)
			Expect(trace.IsNotFound(err)).To(BeTrue(), "expected filter %q to be removed, got %v", filter, err)
		})
	})

	Context("package filters", func() {
		// publishFiltered publishes a view with a repository and a package
		// filter on packageCow
		publishFiltered := func(inclusion string) (view, version string) {
			ledger := lifecycle.NewLedger()
			view = framework.UniqueName()
			filter := framework.UniqueName()
			makeView(view)
			addRepo(view)
			Expect(cv.AddFilter(view, filter, contentview.ContentPackage, inclusion)).To(Succeed())
			Expect(cv.AddPackagesToFilter(view, filter, []contentview.PackageRule{
				{Name: packageCow},
			})).To(Succeed())
			Expect(cv.CheckError()).To(BeFalse())
			return view, publish(view, ledger)
		}

		expectPackage := func(view, version, pkg string, found bool) {
			_, err := cv.PackageSearch(view, version, pkg)
			if found {
				Expect(err).NotTo(HaveOccurred(), "package %v missing from %v", pkg, version)
				return
			}
			Expect(trace.IsNotFound(err)).To(BeTrue(), "expected package %v to be filtered out, got %v", pkg, err)
		}

		framework.Tier2("publishes only the packages of an inclusion filter", func() {
			view, version := publishFiltered(constants.FilterInclude)
			expectPackage(view, version, packageCow, true)
			expectPackage(view, version, packageBear, false)
		})

		framework.Tier2("publishes without the packages of an exclusion filter", func() {
			view, version := publishFiltered(constants.FilterExclude)
			expectPackage(view, version, packageCow, false)
			expectPackage(view, version, packageBear, true)
		})

		framework.Tier2("refuses a range rule without an upper bound", func() {
			view := framework.UniqueName()
			filter := framework.UniqueName()
			makeView(view)
			Expect(cv.AddFilter(view, filter, contentview.ContentPackage, constants.FilterInclude)).To(Succeed())
			err := cv.AddPackagesToFilter(view, filter, []contentview.PackageRule{
				{Name: packageCow, VersionType: contentview.Range, Version: "0.1"},
			})
			Expect(trace.IsBadParameter(err)).To(BeTrue(), "expected bad parameter, got %v", err)
		})
	})

	Context("composite", func() {
		makeComposite := func() string {
			name := framework.UniqueName()
			Expect(factory.MakeCompositeContentView(ui.Session, org.Str("name"), name)).To(Succeed())
			_, err := cv.Search(name)
			Expect(err).NotTo(HaveOccurred(), "composite content view %q not found", name)
			return name
		}

		// publishedView creates a view with a repository and publishes it
		publishedView := func() string {
			view := framework.UniqueName()
			makeView(view)
			addRepo(view)
			publish(view, lifecycle.NewLedger())
			return view
		}

		framework.Tier2("adds a published content view to a composite", func() {
			view := publishedView()
			composite := makeComposite()
			Expect(cv.AddRemoveComponents(composite, []string{view}, true)).To(Succeed())
			Expect(cv.CheckSuccess()).To(BeTrue())
			components, err := cv.Components(composite)
			Expect(err).NotTo(HaveOccurred())
			Expect(components).To(ConsistOf(view))
		})

		framework.Tier2("removes a content view from a composite", func() {
			view := publishedView()
			composite := makeComposite()
			Expect(cv.AddRemoveComponents(composite, []string{view}, true)).To(Succeed())
			Expect(cv.AddRemoveComponents(composite, []string{view}, false)).To(Succeed())
			components, err := cv.Components(composite)
			Expect(err).NotTo(HaveOccurred())
			Expect(components).To(BeEmpty())
		})

		framework.Tier2("refuses an unpublished content view in a composite", func() {
			view := framework.UniqueName()
			makeView(view)
			composite := makeComposite()
			err := cv.AddRemoveComponents(composite, []string{view}, true)
			Expect(trace.IsNotFound(err)).To(BeTrue(), "expected %q to be unavailable, got %v", view, err)
		})

		framework.Tier2("refuses components on a non composite content view", func() {
			view := publishedView()
			plain := framework.UniqueName()
			makeView(plain)
			err := cv.AddRemoveComponents(plain, []string{view}, true)
			Expect(trace.IsBadParameter(err)).To(BeTrue(), "expected bad parameter, got %v", err)
		})

		framework.Tier2("publishes and promotes a composite with custom content", func() {
			ledger := lifecycle.NewLedger()
			env := makeEnvironments(ledger, 1)[0]
			view := publishedView()
			composite := makeComposite()
			Expect(cv.AddRemoveComponents(composite, []string{view}, true)).To(Succeed())
			version := publish(composite, ledger)
			promote(composite, version, env, ledger)
			Expect(cv.CheckSuccess()).To(BeTrue())
			expectEnvironments(version, ledger)
			Expect(ledger.Environments(version)).To(ConsistOf(constants.Library, env))
		})
	})

	Context("copy", func() {
		// publishedCopy copies view, checks the copy carries the repository
		// and publishes the copy
		publishedCopy := func(view, repo string, ledger *lifecycle.Ledger) (string, string) {
			copied := framework.UniqueName()
			Expect(cv.Copy(view, copied)).To(Succeed())
			_, err := cv.Search(copied)
			Expect(err).NotTo(HaveOccurred(), "copy %q not found", copied)
			repos, err := cv.YumRepositories(copied)
			Expect(err).NotTo(HaveOccurred())
			Expect(repos).To(ConsistOf(repo))
			return copied, publish(copied, ledger)
		}

		framework.Tier2("copies a content view into the environment of the original", func() {
			ledger := lifecycle.NewLedger()
			env := makeEnvironments(ledger, 1)[0]
			view := framework.UniqueName()
			makeView(view)
			repo := addRepo(view)
			promote(view, publish(view, ledger), env, ledger)

			copyLedger := lifecycle.NewLedger()
			Expect(copyLedger.AddEnvironment(env, constants.Library)).To(Succeed())
			copied, version := publishedCopy(view, repo, copyLedger)
			promote(copied, version, env, copyLedger)
			expectEnvironments(version, copyLedger)
		})

		framework.Tier2("copies a content view into another environment", func() {
			ledger := lifecycle.NewLedger()
			env := makeEnvironments(ledger, 1)[0]
			view := framework.UniqueName()
			makeView(view)
			repo := addRepo(view)
			promote(view, publish(view, ledger), env, ledger)

			copyLedger := lifecycle.NewLedger()
			other := makeEnvironments(copyLedger, 1)[0]
			copied, version := publishedCopy(view, repo, copyLedger)
			promote(copied, version, other, copyLedger)
			expectEnvironments(version, copyLedger)
			Expect(copyLedger.Environments(version)).NotTo(ContainElement(env))
		})
	})

	Context("permissions", func() {
		// loginAs creates a user of org through the API, assigned to a role
		// with the content view permissions, and logs in as that user
		loginAs := func(admin bool, permissions ...string) *uimodel.UI {
			password := framework.TestContext.Data.Generator().MustString(faux.Alpha, 10)
			u := entities.User.New().
				MustSet("login", framework.UniqueName()).
				MustSet("password", password).
				MustSet("admin", admin).
				MustSet("organizations", org).
				MustSet("default_organization", org)
			if len(permissions) != 0 {
				available, err := svc.AvailablePermissions(ctx, constants.ResourceContentView)
				Expect(err).NotTo(HaveOccurred())
				var perms []*orm.Entity
				for _, p := range available {
					for _, name := range permissions {
						if p.Str("name") == name {
							perms = append(perms, p)
						}
					}
				}
				Expect(perms).To(HaveLen(len(permissions)))
				role := mustCreate(entities.Role.New().MustSet("name", framework.UniqueName()))
				mustCreate(entities.Filter.New().MustSet("role", role).MustSet("permissions", perms))
				u.MustSet("roles", role)
			}
			created := mustCreate(u)
			userUI, err := framework.LoginAs(created.Str("login"), password)
			Expect(err).NotTo(HaveOccurred())
			Expect(userUI.Session.Nav.GoToSelectOrg(org.Str("name"))).To(Succeed())
			return userUI
		}

		framework.Tier2("lets an admin user create and publish a content view", func() {
			userUI := loginAs(true)
			defer framework.LogoutOrWarn(userUI)

			view := framework.UniqueName()
			Expect(factory.MakeContentView(userUI.Session, org.Str("name"), view, "")).To(Succeed())
			userCV, err := userUI.GoToContentViews()
			Expect(err).NotTo(HaveOccurred())
			_, err = userCV.Search(view)
			Expect(err).NotTo(HaveOccurred(), "content view %q not found", view)
			version, err := userCV.Publish(view, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal(lifecycle.NewLedger().Publish()))
		})

		framework.Tier2("lets a user with content view permissions publish", func() {
			view := framework.UniqueName()
			makeView(view)
			userUI := loginAs(false, constants.PermissionsByResource[constants.ResourceContentView]...)
			defer framework.LogoutOrWarn(userUI)

			userCV, err := userUI.GoToContentViews()
			Expect(err).NotTo(HaveOccurred())
			Expect(userCV.CanCreate()).To(BeTrue())
			version, err := userCV.Publish(view, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal(lifecycle.NewLedger().Publish()))
		})

		framework.Tier2("shows content views read only to a viewer", func() {
			view := framework.UniqueName()
			makeView(view)
			userUI := loginAs(false, "view_content_views")
			defer framework.LogoutOrWarn(userUI)

			userCV, err := userUI.GoToContentViews()
			Expect(err).NotTo(HaveOccurred())
			_, err = userCV.Search(view)
			Expect(err).NotTo(HaveOccurred(), "content view %q not visible to viewer", view)
			Expect(userCV.CanCreate()).To(BeFalse(), "viewer is offered to create content views")
		})

		framework.Tier2("hides content views from a user without permissions", func() {
			userUI := loginAs(false)
			defer framework.LogoutOrWarn(userUI)

			_, err := userUI.Session.WaitUntilElementFor(locators.Menu.Get("menu.content"), defaults.MenuTimeout)
			Expect(err).To(HaveOccurred(), "content menu is visible")
		})
	})

	Context("publish", func() {
		const versions = 3

		framework.Tier2("moves the target environment to the promoted version", func() {
			ledger := lifecycle.NewLedger()
			env := makeEnvironments(ledger, 1)[0]
			view := framework.UniqueName()
			makeView(view)
			for i := 0; i < versions; i++ {
				addRepo(view)
				version := publish(view, ledger)
				expectEnvironments(version, ledger)
				Expect(ledger.Environments(version)).NotTo(ContainElement(env))

				promote(view, version, env, ledger)
				expectEnvironments(version, ledger)
				Expect(ledger.Environments(version)).To(ConsistOf(constants.Library, env))
			}
		})

		framework.Tier2("moves Library away from the previous version", func() {
			ledger := lifecycle.NewLedger()
			env := makeEnvironments(ledger, 1)[0]
			view := framework.UniqueName()
			makeView(view)
			var previous string
			for i := 0; i < versions; i++ {
				addRepo(view)
				version := publish(view, ledger)
				promote(view, version, env, ledger)
				expectEnvironments(version, ledger)
				if previous != "" {
					expectEnvironments(previous, ledger)
					Expect(ledger.Environments(previous)).To(BeEmpty())
				}
				previous = version
			}
		})

		framework.Stubbed("restarts a failed promotion through dynflow")

		framework.Stubbed("restarts a failed publish through dynflow")
	})

	Context("remove version", func() {
		remove := func(view, version string, ledger *lifecycle.Ledger, envs ...string) {
			Expect(cv.RemoveVersionFromEnvironments(view, version, envs)).To(Succeed())
			Expect(ledger.Remove(version, envs...)).To(Succeed())
			expectEnvironments(version, ledger)
		}

		framework.Tier2("removes a version from Library", func() {
			ledger := lifecycle.NewLedger()
			view := framework.UniqueName()
			makeView(view)
			addRepo(view)
			version := publish(view, ledger)
			expectEnvironments(version, ledger)
			remove(view, version, ledger, constants.Library)
			Expect(ledger.Environments(version)).To(BeEmpty())
		})

		framework.Tier2("removes a version of a renamed content view from Library", func() {
			ledger := lifecycle.NewLedger()
			view, renamed := framework.UniqueName(), framework.UniqueName()
			makeView(view)
			addRepo(view)
			version := publish(view, ledger)

			Expect(cv.Update(view, renamed, "")).To(Succeed())
			_, err := cv.Search(view)
			Expect(trace.IsNotFound(err)).To(BeTrue())
			Expect(cv.OpenVersions(renamed)).To(Succeed())
			expectEnvironments(version, ledger)

			remove(renamed, version, ledger, constants.Library)
			Expect(ledger.Environments(version)).To(BeEmpty())
		})

		framework.Tier2("removes a promoted version from Library", func() {
			ledger := lifecycle.NewLedger()
			dev := makeEnvironments(ledger, 1)[0]
			view := framework.UniqueName()
			makeView(view)
			addRepo(view)
			version := publish(view, ledger)
			promote(view, version, dev, ledger)
			expectEnvironments(version, ledger)

			remove(view, version, ledger, constants.Library)
			Expect(ledger.Environments(version)).To(ConsistOf(dev))
		})

		framework.Tier2("removes a version from the last environment and promotes it again", func() {
			ledger := lifecycle.NewLedger()
			envs := makeEnvironments(ledger, 4)
			prod := envs[len(envs)-1]
			view := framework.UniqueName()
			makeView(view)
			addRepo(view)
			version := publish(view, ledger)
			for _, env := range envs {
				promote(view, version, env, ledger)
			}
			expectEnvironments(version, ledger)

			remove(view, version, ledger, prod)
			Expect(ledger.Environments(version)).NotTo(ContainElement(prod))

			promote(view, version, prod, ledger)
			expectEnvironments(version, ledger)
			Expect(ledger.Environments(version)).To(HaveLen(len(envs) + 1))
		})

		framework.Tier2("removes a version from multiple environments", func() {
			ledger := lifecycle.NewLedger()
			envs := makeEnvironments(ledger, 4)
			view := framework.UniqueName()
			makeView(view)
			addRepo(view)
			version := publish(view, ledger)
			for _, env := range envs {
				promote(view, version, env, ledger)
			}
			remove(view, version, ledger, envs[1:]...)
			Expect(ledger.Environments(version)).To(ConsistOf(constants.Library, envs[0]))
		})

		framework.Tier2("deletes a content view promoted to multiple environments", func() {
			ledger := lifecycle.NewLedger()
			envs := makeEnvironments(ledger, 4)
			view := framework.UniqueName()
			makeView(view)
			addRepo(view)
			version := publish(view, ledger)
			for _, env := range envs {
				promote(view, version, env, ledger)
			}
			remove(view, version, ledger, ledger.Environments(version)...)
			Expect(cv.Delete(view, true)).To(Succeed())
			_, err := cv.Search(view)
			Expect(trace.IsNotFound(err)).To(BeTrue(), "expected %q to be deleted, got %v", view, err)
		})

		framework.Stubbed("removes a version from an environment with a registered host")

		framework.Stubbed("deletes a content view promoted to an environment with a registered host")
	})

	Context("delete version", func() {
		// publishAPI publishes view through the API and returns the version
		// entity with its displayed name
		publishAPI := func(view *orm.Entity) (*orm.Entity, string) {
			version, err := svc.Publish(ctx, view)
			Expect(err).NotTo(HaveOccurred())
			return version, lifecycle.FormatVersion(version.Str("version"))
		}

		viewWithRepo := func() *orm.Entity {
			repo := syncedRepo(org, framework.UniqueName())
			view := mustCreate(entities.ContentView.New().MustSet("organization", org))
			view.MustSet("repositories", []*orm.Entity{repo})
			updated, err := svc.Update(ctx, view, "repositories")
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.RelatedList("repositories")).To(HaveLen(1))
			return updated
		}

		deleteVersion := func(view *orm.Entity, version string) {
			Expect(ui.Session.Nav.GoToSelectOrg(org.Str("name"))).To(Succeed())
			Expect(cv.DeleteVersion(view.Str("name"), version)).To(Succeed())
			Expect(cv.CheckProgressBarStatus(version)).To(Succeed())
			Expect(cv.ValidateVersionDeleted(view.Str("name"), version)).To(Succeed())
		}

		framework.Tier2("deletes the version in Library", func() {
			view := viewWithRepo()
			_, version := publishAPI(view)
			deleteVersion(view, version)
		})

		framework.Tier2("deletes a version promoted out of Library", func() {
			view := viewWithRepo()
			cvv, version := publishAPI(view)
			env := mustCreate(entities.LifecycleEnvironment.New().MustSet("organization", org))
			Expect(svc.Promote(ctx, cvv, []int{env.ID()}, false)).To(Succeed())
			deleteVersion(view, version)
		})

		framework.Tier2("deletes a version once no activation key uses it", func() {
			view := mustCreate(entities.ContentView.New().MustSet("organization", org))
			cvv, version := publishAPI(view)
			env := mustCreate(entities.LifecycleEnvironment.New().MustSet("organization", org))
			Expect(svc.Promote(ctx, cvv, []int{env.ID()}, false)).To(Succeed())

			ledger := lifecycle.NewLedger()
			Expect(ledger.AddEnvironment(env.Str("name"), constants.Library)).To(Succeed())
			Expect(ledger.Publish()).To(Equal(version))
			Expect(ledger.Promote(version, env.Str("name"), false)).To(Succeed())

			key := mustCreate(entities.ActivationKey.New().
				MustSet("name", framework.UniqueName()).
				MustSet("organization", org).
				MustSet("environment", env).
				MustSet("content_view", view))
			Expect(ledger.Pin(env.Str("name"))).To(Succeed())
			Expect(trace.IsCompareFailed(ledger.Delete(version))).To(BeTrue())

			Expect(ui.Session.Nav.GoToSelectOrg(org.Str("name"))).To(Succeed())
			Expect(cv.ValidateVersionCannotBeDeleted(view.Str("name"), version)).To(Succeed())

			By(fmt.Sprintf("releasing activation key %v", key.Str("name")))
			Expect(svc.Delete(ctx, key)).To(Succeed())
			Expect(ledger.Unpin(env.Str("name"))).To(Succeed())
			Expect(ledger.Delete(version)).To(Succeed())

			Expect(cv.DeleteVersion(view.Str("name"), version)).To(Succeed())
			Expect(cv.ValidateVersionDeleted(view.Str("name"), version)).To(Succeed())
			Expect(ledger.Versions()).To(BeEmpty())
		})
	})
})
