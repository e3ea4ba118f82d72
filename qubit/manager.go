package qubit

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/common"
	"go.uber.org/zap"
)

const (
	DefaultCapacity = 50
	SettingName     = "qubit_manager"
)

type ID int

type Setting struct {
	Capacity int `toml:"capacity"`
}

// SettingFrom reads the qubit manager entry of the component settings.
// TOML decodes the entry as a generic map; a missing or non-positive
// capacity falls back to fallback, or to DefaultCapacity when that is not
// positive either.
func SettingFrom(v interface{}, fallback int) Setting {
	if fallback <= 0 {
		fallback = DefaultCapacity
	}
	s := Setting{Capacity: fallback}
	switch t := v.(type) {
	case Setting:
		s.Capacity = t.Capacity
	case *Setting:
		if t != nil {
			s.Capacity = t.Capacity
		}
	case map[string]interface{}:
		if c, ok := t["capacity"].(int64); ok {
			s.Capacity = int(c)
		}
	}
	if s.Capacity <= 0 {
		s.Capacity = fallback
	}
	return s
}

// Manager hands out qubit ids 0, 1, 2, ... up to a fixed capacity.
// Ids are never reused: release, disable and return do no bookkeeping,
// and borrowing hands out fresh qubits.
type Manager struct {
	capacity int
	used     int
}

func NewManager(capacity int) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Manager{capacity: capacity}
}

func (m *Manager) Allocate() (ID, error) {
	if m.used >= m.capacity {
		return 0, errors.Wrapf(common.ErrResourceExhausted,
			"all %d qubits are in use", m.capacity)
	}
	id := ID(m.used)
	m.used++
	zap.L().Debug(fmt.Sprintf("allocated qubit/id:%d", id))
	return id, nil
}

// AllocateMany allocates count qubits in order. Nothing stays allocated
// when the request cannot be fully served.
func (m *Manager) AllocateMany(count int) ([]ID, error) {
	if count <= 0 {
		return nil, errors.Wrapf(common.ErrInvalidArgument,
			"attempt to allocate %d qubits", count)
	}
	before := m.used
	ids := make([]ID, 0, count)
	for i := 0; i < count; i++ {
		id, err := m.Allocate()
		if err != nil {
			m.used = before
			zap.L().Info(fmt.Sprintf("failed to allocate %d qubits/rolled back to %d/reason:%s",
				count, before, err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *Manager) Release(ID) {}
func (m *Manager) ReleaseMany([]ID) {}
func (m *Manager) Disable(ID) {}
func (m *Manager) DisableMany([]ID) {}
func (m *Manager) Return(ID) {}
func (m *Manager) ReturnMany([]ID) {}
func (m *Manager) IsDisabled(ID) bool { return false }

func (m *Manager) Borrow() (ID, error) {
	return m.Allocate()
}

func (m *Manager) BorrowMany(count int) ([]ID, error) {
	return m.AllocateMany(count)
}

func (m *Manager) BorrowingDisabled() bool {
	return true
}

func (m *Manager) QubitsAvailableToBorrowCount() int {
	return 0
}

func (m *Manager) ToBeReleasedAfterReturn(ID) bool {
	return true
}

func (m *Manager) ToBeReleasedAfterReturnCount(ids []ID) int {
	return len(ids)
}

func (m *Manager) IsValid(id ID) bool {
	return id >= 0 && int(id) < m.used
}

func (m *Manager) IsFree(id ID) bool {
	return m.IsValid(id)
}

func (m *Manager) Capacity() int {
	return m.capacity
}

func (m *Manager) UsedCount() int {
	return m.used
}

func (m *Manager) FreeCount() int {
	return m.capacity - m.used
}

func (m *Manager) AllocatedIDs() []ID {
	ids := make([]ID, 0, m.used)
	for i := 0; i < m.used; i++ {
		ids = append(ids, ID(i))
	}
	return ids
}

func (m *Manager) OnOperationStart(name string) {
	zap.L().Debug(fmt.Sprintf("operation started/name:%s/used:%d", name, m.used))
}

func (m *Manager) OnOperationEnd(name string) {
	zap.L().Debug(fmt.Sprintf("operation ended/name:%s/used:%d", name, m.used))
}
