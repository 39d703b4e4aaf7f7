package services

// ShouldSoftDelete reports whether deleting a menu must be downgraded to
// disabling it. Menus referenced by any order keep their row so order
// history stays intact.
func ShouldSoftDelete(referencingOrders int) bool {
	return referencingOrders > 0
}
