package detail

// UpdateAttribute sends a single-attribute update for itemID to the
// dispatcher, addressed to the product of the current route. It does not
// wait for or inspect the outcome.
func (p *Presenter) UpdateAttribute(itemID int, attr Attribute, value any) {
	productID := p.router.Params().ID

	attrs := map[string]any{string(attr): value}
	p.log.Debug("update item", "product", productID, "item", itemID, "attr", string(attr), "value", value)

	p.dispatcher.UpdateItem(productID, itemID, attrs)
}

// bindUpdate captures an UpdateAttribute call for use as a click handler.
func (p *Presenter) bindUpdate(itemID int, attr Attribute, value any) func() {
	return func() { p.UpdateAttribute(itemID, attr, value) }
}
