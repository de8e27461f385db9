package devidx

import "fmt"

// Device is one indexed record: the numeric ID the tree is keyed by, the
// network address the device answers on, and the logical path it is mounted
// under. Identity is (ID, Addr); Path is payload only.
type Device struct {
	ID   uint64
	Addr string
	Path string
}

// Equal reports whether d and o name the same device. Two records that
// differ only in Path are considered equal.
func (d Device) Equal(o Device) bool {
	return d.ID == o.ID && d.Addr == o.Addr
}

// String renders the record for logs, the visualizer, and the demo CLI.
func (d Device) String() string {
	if d.Path == "" {
		return fmt.Sprintf("%d@%s", d.ID, d.Addr)
	}
	return fmt.Sprintf("%d@%s %s", d.ID, d.Addr, d.Path)
}
