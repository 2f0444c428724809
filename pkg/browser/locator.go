package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// By selects how a Locator value is matched against the page.
type By string

// locator strategies
const (
	ByCSS   By = "css"
	ByRole  By = "role"
	ByLabel By = "label"
	ByText  By = "text"
)

// Locator describes an element query resolved against the page at interaction time.
type Locator struct {
	By    By
	Role  string // aria role for ByRole, e.g. "button" or "heading"
	Value string // css selector, accessible name, label or text
	Exact bool
}

// CSS returns a css selector locator.
func CSS(selector string) Locator { return Locator{By: ByCSS, Value: selector} }

// Role returns an exact role+name locator.
func Role(role, name string) Locator { return Locator{By: ByRole, Role: role, Value: name, Exact: true} }

// Label returns an exact form-label locator.
func Label(label string) Locator { return Locator{By: ByLabel, Value: label, Exact: true} }

// Text returns an exact visible-text locator.
func Text(text string) Locator { return Locator{By: ByText, Value: text, Exact: true} }

// String formats the locator the way it is shown in logs and errors.
func (l Locator) String() string {
	switch l.By {
	case ByCSS:
		return l.Value
	case ByRole:
		return fmt.Sprintf("role=%s[name=%q]", l.Role, l.Value)
	case ByLabel:
		return fmt.Sprintf("label=%q", l.Value)
	case ByText:
		return fmt.Sprintf("text=%q", l.Value)
	default:
		return fmt.Sprintf("%s=%q", l.By, l.Value)
	}
}

// resolve turns the locator into a playwright locator on the page.
func (l Locator) resolve(page playwright.Page) (playwright.Locator, error) {
	switch l.By {
	case ByCSS:
		return page.Locator(l.Value), nil
	case ByRole:
		role, ok := ariaRoles[l.Role]
		if !ok {
			return nil, fmt.Errorf("unsupported role %q", l.Role)
		}
		return page.GetByRole(role, playwright.PageGetByRoleOptions{Name: l.Value, Exact: playwright.Bool(l.Exact)}), nil
	case ByLabel:
		return page.GetByLabel(l.Value, playwright.PageGetByLabelOptions{Exact: playwright.Bool(l.Exact)}), nil
	case ByText:
		return page.GetByText(l.Value, playwright.PageGetByTextOptions{Exact: playwright.Bool(l.Exact)}), nil
	default:
		return nil, fmt.Errorf("unsupported locator strategy %q", l.By)
	}
}

// ariaRoles lists the roles a scenario may address.
var ariaRoles = map[string]playwright.AriaRole{
	"button":     *playwright.AriaRoleButton,
	"heading":    *playwright.AriaRoleHeading,
	"link":       *playwright.AriaRoleLink,
	"textbox":    *playwright.AriaRoleTextbox,
	"dialog":     *playwright.AriaRoleDialog,
	"checkbox":   *playwright.AriaRoleCheckbox,
	"listitem":   *playwright.AriaRoleListitem,
	"combobox":   *playwright.AriaRoleCombobox,
	"navigation": *playwright.AriaRoleNavigation,
}
