package ports

import "github.com/vpclogistics/dispatch-widget/internal/core/domain"

// LinkOpener attempts to open a link in a new browsing context and reports
// immediately whether the host environment allowed it.
type LinkOpener interface {
	Open(link string) domain.OpenResult
}
