package visitor

// Modem is the element contract. Each concrete modem calls back into the
// visitor method matching its own type.
type Modem interface {
	Accept(visitor ModemVisitor)
}

// ModemVisitor carries one visit method per concrete modem. Adding a new
// modem type means every visitor stops compiling until it handles it.
type ModemVisitor interface {
	VisitHayes(modem Hayes)
	VisitZoom(modem Zoom)
}

type Hayes struct{}

// Accept visitor.
func (receiver Hayes) Accept(visitor ModemVisitor) {
	visitor.VisitHayes(receiver)
}

type Zoom struct{}

// Accept visitor.
func (receiver Zoom) Accept(visitor ModemVisitor) {
	visitor.VisitZoom(receiver)
}
