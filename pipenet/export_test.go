package pipenet

// ReevaluateInOrder runs one pass visiting input tiles in the given order.
func (n *Network) ReevaluateInOrder(order []TileID) { n.pass(order) }
