package user_test

import (
	"github.com/satelliteqe/robotest/e2e/framework"
	"github.com/satelliteqe/robotest/e2e/uimodel/factory"
	"github.com/satelliteqe/robotest/e2e/uimodel/locators"
	"github.com/satelliteqe/robotest/e2e/uimodel/page"
	"github.com/satelliteqe/robotest/e2e/uimodel/user"
	"github.com/satelliteqe/robotest/lib/constants"
	"github.com/satelliteqe/robotest/lib/faux"

	"github.com/gravitational/trace"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/sclevine/agouti/matchers"
)

// nameLength is the longest first name or surname the server accepts
const nameLength = 50

var _ = framework.RoboDescribe("Users", func() {
	var (
		users user.Users
		gen   *faux.Generator
	)

	// newUser returns a user with every required field filled in
	newUser := func() user.User {
		return user.User{
			Username:  gen.MustString(faux.Alpha, 8),
			Password:  gen.MustString(faux.Alpha, 8),
			Email:     gen.Email(),
			FirstName: gen.MustString(faux.Alpha, 10),
			LastName:  gen.MustString(faux.Alpha, 8),
		}
	}

	create := func(u user.User) {
		Expect(factory.MakeUser(ui.Session, u)).To(Succeed())
	}

	mustExist := func(name string) {
		_, err := users.Search(name, "")
		Expect(err).NotTo(HaveOccurred(), "user %q not found", name)
	}

	// openUser opens the edit form of the user
	openUser := func(name string) {
		sel, err := users.Search(name, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(sel.Click()).To(Succeed())
		form := page.Selection(ui.Session.Page, locators.Users.Get("users.username"))
		Eventually(form, ui.Session.Timeout).Should(BeFound(), "waiting for the form of user %v", name)
		Expect(form).To(BeVisible())
	}

	expectAssigned := func(name, tabKey string, names ...string) {
		assigned, err := users.Assigned(name, tabKey, names...)
		Expect(err).NotTo(HaveOccurred())
		for _, n := range names {
			Expect(assigned[n]).To(BeTrue(), "%v is not assigned to user %v", n, name)
		}
	}

	makeRoles := func(count int) []string {
		var roles []string
		for i := 0; i < count; i++ {
			role := framework.UniqueName()
			Expect(factory.MakeRole(ui.Session, role, nil, nil)).To(Succeed())
			roles = append(roles, role)
		}
		return roles
	}

	makeOrgs := func(count int) []string {
		var orgs []string
		for i := 0; i < count; i++ {
			org := framework.UniqueName()
			Expect(factory.MakeOrg(ui.Session, org)).To(Succeed())
			orgs = append(orgs, org)
		}
		return orgs
	}

	// canLogin reports whether the credentials open a session
	canLogin := func(username, password string) {
		session, err := framework.LoginAs(username, password)
		Expect(err).NotTo(HaveOccurred(), "%v cannot log in", username)
		Expect(framework.Logout(session)).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		users, err = ui.GoToUsers()
		Expect(err).NotTo(HaveOccurred())
		gen = framework.TestContext.Data.Generator()
	})

	Context("create", func() {
		framework.Tier1("creates users with valid usernames", func() {
			for _, name := range framework.TestContext.Data.ValidDataList() {
				By(name)
				u := newUser()
				u.Username = name
				create(u)
				mustExist(name)
			}
		})

		framework.Tier1("creates users with valid first names and surnames", func() {
			names, err := framework.TestContext.Data.GenerateStringsList(nameLength)
			Expect(err).NotTo(HaveOccurred())
			for _, name := range names {
				By(name)
				u := newUser()
				u.FirstName = name
				u.LastName = name
				create(u)
				openUser(u.Username)
				Expect(users.FieldValue("users.firstname")).To(Equal(name))
				Expect(users.FieldValue("users.lastname")).To(Equal(name))
			}
		})

		framework.Tier1("creates users with every language", func() {
			for _, lang := range constants.Languages {
				By(lang)
				u := newUser()
				u.Locale = lang
				create(u)
				openUser(u.Username)
				Expect(users.Language()).To(Equal(lang))
			}
		})

		framework.Tier1("creates users with valid passwords", func() {
			for _, password := range framework.TestContext.Data.ValidDataList() {
				By(password)
				u := newUser()
				u.Password = password
				create(u)
				mustExist(u.Username)
			}
		})

		framework.Tier1("creates an admin user", func() {
			u := newUser()
			u.Admin = true
			create(u)
			mustExist(u.Username)
			canLogin(u.Username, u.Password)
		})

		framework.Tier2("creates users with roles", func() {
			for _, count := range []int{1, 2} {
				roles := makeRoles(count)
				u := newUser()
				u.Roles = roles
				create(u)
				expectAssigned(u.Username, "users.tab_roles", roles...)
			}
		})

		framework.Tier2("creates users in organizations", func() {
			for _, count := range []int{1, 2} {
				orgs := makeOrgs(count)
				u := newUser()
				u.Orgs = orgs
				create(u)
				expectAssigned(u.Username, "users.tab_organizations", orgs...)
			}
		})

		framework.Stubbed("creates users in every supported LDAP mode")

		framework.Stubbed("creates users with a fact filter")
	})

	Context("create negative", func() {
		expectError := func(u user.User) {
			create(u)
			Expect(users.CheckError()).To(BeTrue(), "no validation error for %#v", u)
		}

		framework.Tier1("refuses invalid usernames", func() {
			for _, name := range framework.TestContext.Data.InvalidValuesList(constants.InterfaceUI) {
				By(name)
				u := newUser()
				u.Username = name
				expectError(u)
			}
		})

		framework.Tier1("refuses first names and surnames that are too long", func() {
			names, err := framework.TestContext.Data.GenerateStringsList(nameLength + 1)
			Expect(err).NotTo(HaveOccurred())
			for _, name := range names {
				By(name)
				u := newUser()
				u.FirstName = name
				expectError(u)

				u = newUser()
				u.LastName = name
				expectError(u)
			}
		})

		framework.Tier1("refuses mismatching passwords", func() {
			u := newUser()
			u.PasswordConfirm = gen.MustString(faux.Alpha, 8)
			expectError(u)
		})

		framework.Stubbed("refuses invalid email addresses")

		framework.Stubbed("discards the form on cancel")
	})

	Context("update", func() {
		framework.Tier1("renames users", func() {
			for _, newName := range framework.TestContext.Data.ValidDataList() {
				By(newName)
				u := newUser()
				create(u)
				Expect(users.Update(u.Username, "", user.Update{NewUsername: newName})).To(Succeed())
				mustExist(newName)
				canLogin(newName, u.Password)
			}
		})

		framework.Tier1("changes the password", func() {
			u := newUser()
			create(u)
			password := gen.MustString(faux.Alpha, 8)
			Expect(users.Update(u.Username, "", user.Update{Password: password})).To(Succeed())
			canLogin(u.Username, password)
		})

		framework.Tier1("changes first name, surname and email", func() {
			u := newUser()
			create(u)
			update := user.Update{
				FirstName: gen.MustString(faux.Alpha, 10),
				LastName:  gen.MustString(faux.Alpha, 10),
				Email:     gen.Email(),
			}
			Expect(users.Update(u.Username, "", update)).To(Succeed())
			openUser(u.Username)
			Expect(users.FieldValue("users.firstname")).To(Equal(update.FirstName))
			Expect(users.FieldValue("users.lastname")).To(Equal(update.LastName))
			Expect(users.FieldValue("users.email")).To(Equal(update.Email))
		})

		framework.Tier2("assigns a role", func() {
			role := makeRoles(1)[0]
			u := newUser()
			create(u)
			assigned, err := users.Assigned(u.Username, "users.tab_roles", role)
			Expect(err).NotTo(HaveOccurred())
			Expect(assigned[role]).To(BeFalse())

			Expect(users.Update(u.Username, "", user.Update{NewRoles: []string{role}})).To(Succeed())
			expectAssigned(u.Username, "users.tab_roles", role)
		})

		framework.Tier2("grants and revokes admin", func() {
			u := newUser()
			create(u)
			for _, admin := range []bool{true, false} {
				admin := admin
				Expect(users.Update(u.Username, "", user.Update{Admin: &admin})).To(Succeed())
				Expect(users.CheckError()).To(BeFalse())
			}
		})

		framework.Tier1("refuses mismatching passwords", func() {
			u := newUser()
			create(u)
			update := user.Update{
				Password:        gen.MustString(faux.Alpha, 8),
				PasswordConfirm: gen.MustString(faux.Alpha, 8),
			}
			Expect(users.Update(u.Username, "", update)).To(Succeed())
			Expect(users.CheckError()).To(BeTrue())
		})
	})

	Context("delete", func() {
		framework.Tier1("deletes users", func() {
			for _, admin := range []bool{false, true} {
				u := newUser()
				u.Admin = admin
				create(u)
				mustExist(u.Username)
				Expect(users.Delete(u.Username, "", true)).To(Succeed())
				_, err := users.Search(u.Username, "")
				Expect(trace.IsNotFound(err)).To(BeTrue(), "expected %q to be deleted, got %v", u.Username, err)
			}
		})

		framework.Tier1("keeps the user when deletion is dismissed", func() {
			u := newUser()
			create(u)
			Expect(users.Delete(u.Username, "", false)).To(Succeed())
			mustExist(u.Username)
		})

		framework.Stubbed("refuses to delete the last admin user")
	})
})
