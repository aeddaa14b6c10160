package models

// Task is a to-do row. Listing order follows Seq, the insertion sequence,
// so clients see tasks in the order they were created.
type Task struct {
	ID        string
	UserID    int64
	Title     string
	Completed bool
	Seq       int64
}
