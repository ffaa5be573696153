// Package locators holds the UI element locators, grouped into tables per page
package locators

import (
	"fmt"
	"strings"
)

// By names a locator strategy
type By string

const (
	CSS   By = "css"
	XPath By = "xpath"
	ID    By = "id"
	Name  By = "name"
	Link  By = "link"
	Class By = "class"
)

// Locator finds an element on the page
type Locator struct {
	By    By
	Value string
}

// Format fills the %s placeholders of the locator value.
// A locator without arguments is returned as is
func (l Locator) Format(args ...interface{}) Locator {
	if len(args) == 0 {
		return l
	}
	return Locator{By: l.By, Value: fmt.Sprintf(l.Value, args...)}
}

// IsTemplate returns true if the locator needs arguments
func (l Locator) IsTemplate() bool {
	return strings.Contains(l.Value, "%s")
}

func (l Locator) String() string {
	return fmt.Sprintf("%v=%v", l.By, l.Value)
}

// Table is a named set of locators
type Table map[string]Locator

// Get returns the locator with the given name formatted with args.
// An unknown name is a programming error and panics
func (t Table) Get(name string, args ...interface{}) Locator {
	l, ok := t[name]
	if !ok {
		panic(fmt.Sprintf("unknown locator %q", name))
	}
	return l.Format(args...)
}

func xpath(value string) Locator { return Locator{By: XPath, Value: value} }
func css(value string) Locator   { return Locator{By: CSS, Value: value} }
func id(value string) Locator    { return Locator{By: ID, Value: value} }
func name(value string) Locator  { return Locator{By: Name, Value: value} }
func link(value string) Locator  { return Locator{By: Link, Value: value} }
