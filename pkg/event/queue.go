package event

// Queue is a FIFO task queue modelling one turn of the UI run loop.
//
// Work that must not run inline during event dispatch — layout
// mutation in particular — is posted here and executed on the next
// Drain. The queue is cooperative and single-threaded: the owning run
// loop is the only producer and the only consumer, so no locking is
// needed.
type Queue struct {
	tasks []func()
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Post enqueues a task for the next Drain. Nil tasks are ignored.
func (q *Queue) Post(task func()) {
	if task == nil {
		return
	}
	q.tasks = append(q.tasks, task)
}

// Drain runs all pending tasks in FIFO order. Tasks posted while
// draining are run in the same pass, after the tasks that preceded
// them — there is no coalescing.
func (q *Queue) Drain() {
	for len(q.tasks) > 0 {
		task := q.tasks[0]
		q.tasks = q.tasks[1:]
		task()
	}
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}
