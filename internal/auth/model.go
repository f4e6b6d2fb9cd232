package auth

// Staff roles. ADMIN unlocks catalog, table, and scheduling administration;
// STAFF covers the floor screens (orders, bookings, own shifts).
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User is a staff account.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
