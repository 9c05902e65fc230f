package backends

import "github.com/WingCode/qiskit-braket-provider/jobs"

// LocalBackend describes an in-process simulator backend. Tasks submitted
// to it execute synchronously, so any job it backs is finished by the time
// the job object exists.
type LocalBackend struct {
	name string
}

var _ jobs.Backend = (*LocalBackend)(nil)

// NewLocalBackend creates a descriptor for the named local simulator
// ("default" is the braket state-vector simulator).
func NewLocalBackend(name string) *LocalBackend {
	return &LocalBackend{name: name}
}

func (b *LocalBackend) Name() string {
	return b.name
}

func (b *LocalBackend) Local() bool {
	return true
}
