package app

import "fmt"

// Page is the navigation state: it selects the rendered view and how input is interpreted
// Every switch over Page must list all variants; the exhaustive linter enforces it
type Page uint8

const (
	PageSetList   Page = iota // Initial page, lists sets
	PageCreateSet             // Composing a new set name
)

// String returns the page name for logs
func (p Page) String() string {
	//exhaustive:enforce
	switch p {
	case PageSetList:
		return "SetList"
	case PageCreateSet:
		return "CreateSet"
	}
	return fmt.Sprintf("Page(%d)", uint8(p))
}

// Pages returns every variant in declaration order
func Pages() []Page {
	return []Page{PageSetList, PageCreateSet}
}
