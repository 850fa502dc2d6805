// Package dialect holds the fixed catalog of selector dialects: named
// mappings from logical UI roles to concrete locator expressions for a
// class of target applications.
//
// The catalog is defined at process start and never mutated, so it is safe
// to share across concurrent callers without locking.
package dialect

import (
	"sort"

	"robogen/internal/errors"
	"robogen/internal/sanitize"
)

// Role is a logical UI role referenced by template skeletons.
type Role string

const (
	RoleUsernameField    Role = "username_field"
	RolePasswordField    Role = "password_field"
	RoleLoginButton      Role = "login_button"
	RoleSuccessIndicator Role = "success_indicator"
	RoleErrorMessage     Role = "error_message"
	RoleLogoutButton     Role = "logout_button"
)

// AllRoles lists every role a template may reference. Verify checks that
// each dialect maps all of them.
func AllRoles() []Role {
	return []Role{
		RoleUsernameField,
		RolePasswordField,
		RoleLoginButton,
		RoleSuccessIndicator,
		RoleErrorMessage,
		RoleLogoutButton,
	}
}

// ID identifies a dialect in the closed catalog.
type ID string

const (
	AppLocator ID = "appLocator"
	Generic    ID = "generic"
	Bootstrap  ID = "bootstrap"
)

// DefaultID is used when a caller supplies an unknown or empty identifier.
const DefaultID = AppLocator

// Dialect is an immutable role→locator mapping.
type Dialect struct {
	id       ID
	locators map[Role]string
}

// ID returns the dialect identifier.
func (d Dialect) ID() ID { return d.id }

// Locator returns the locator expression for a role. Locators are authored
// in-tree and verified at startup, so they carry the catalog trust tag.
func (d Dialect) Locator(role Role) sanitize.Value {
	return sanitize.Trusted(d.locators[role])
}

// catalog is the fixed set of dialects. Locator expressions follow
// SeleniumLibrary syntax (strategy=value).
var catalog = map[ID]Dialect{
	AppLocator: {
		id: AppLocator,
		locators: map[Role]string{
			RoleUsernameField:    "id=user-name",
			RolePasswordField:    "id=password",
			RoleLoginButton:      "id=login-button",
			RoleSuccessIndicator: "xpath=//span[@class='title']",
			RoleErrorMessage:     "xpath=//h3[@data-test='error']",
			RoleLogoutButton:     "id=logout_sidebar_link",
		},
	},
	Generic: {
		id: Generic,
		locators: map[Role]string{
			RoleUsernameField:    "id=username",
			RolePasswordField:    "id=password",
			RoleLoginButton:      "css=button[type='submit']",
			RoleSuccessIndicator: "css=.dashboard",
			RoleErrorMessage:     "css=.error",
			RoleLogoutButton:     "css=.logout",
		},
	},
	Bootstrap: {
		id: Bootstrap,
		locators: map[Role]string{
			RoleUsernameField:    "css=input[name='username']",
			RolePasswordField:    "css=input[name='password']",
			RoleLoginButton:      "css=.btn-primary",
			RoleSuccessIndicator: "css=.navbar-brand",
			RoleErrorMessage:     "css=.alert-danger",
			RoleLogoutButton:     "css=.btn-outline-secondary",
		},
	},
}

// Resolve looks up a dialect by identifier. On a miss it returns the
// default dialect with usedDefault=true rather than failing: template_type
// is a convenience parameter and generation stays best-effort.
func Resolve(identifier string) (Dialect, bool) {
	if d, ok := catalog[ID(identifier)]; ok {
		return d, false
	}

	return catalog[DefaultID], true
}

// Names returns the catalog identifiers in stable order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for id := range catalog {
		names = append(names, string(id))
	}
	sort.Strings(names)

	return names
}

// Verify checks catalog completeness: every dialect must map every role any
// template references. A violation is a catalog-authoring defect and must
// prevent the process from serving requests.
func Verify() error {
	for _, id := range Names() {
		d := catalog[ID(id)]
		for _, role := range AllRoles() {
			if d.locators[role] == "" {
				return errors.ErrMissingRoleMapping(id, string(role))
			}
		}
	}

	return nil
}
