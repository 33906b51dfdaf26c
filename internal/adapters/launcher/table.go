package launcher

import (
	"errors"
	"os"
	"sync"

	"github.com/google/uuid"
)

// table tracks live child processes by a synthetic id so they can be
// terminated in bulk at shutdown.
type table struct {
	mu    sync.Mutex
	procs map[string]*os.Process
}

func newTable() *table {
	return &table{procs: make(map[string]*os.Process)}
}

// add registers a process and returns its tracking id.
func (t *table) add(p *os.Process) string {
	id := uuid.NewString()
	t.mu.Lock()
	t.procs[id] = p
	t.mu.Unlock()
	return id
}

func (t *table) remove(id string) {
	t.mu.Lock()
	delete(t.procs, id)
	t.mu.Unlock()
}

func (t *table) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.procs)
}

// killAll terminates every tracked process. Processes that already exited
// are skipped; the table is emptied regardless.
func (t *table) killAll() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var errs []error
	for id, p := range t.procs {
		if err := p.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			errs = append(errs, err)
		}
		delete(t.procs, id)
	}
	return errors.Join(errs...)
}
