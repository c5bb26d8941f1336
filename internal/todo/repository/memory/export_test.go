package memory

import "todolist/internal/todo/repository"

// SetNextID moves the id counter; test-only.
func SetNextID(r repository.Repository, next int) {
	impl := r.(*implRepository)
	impl.mu.Lock()
	impl.nextID = next
	impl.mu.Unlock()
}
