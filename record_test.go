package devidx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Device
		want bool
	}{
		{
			name: "identical",
			a:    Device{ID: 1, Addr: "10.0.0.1", Path: "/rack/1"},
			b:    Device{ID: 1, Addr: "10.0.0.1", Path: "/rack/1"},
			want: true,
		},
		{
			name: "path_ignored",
			a:    Device{ID: 1, Addr: "10.0.0.1", Path: "/rack/1"},
			b:    Device{ID: 1, Addr: "10.0.0.1", Path: "/rack/2"},
			want: true,
		},
		{
			name: "different_addr",
			a:    Device{ID: 1, Addr: "10.0.0.1"},
			b:    Device{ID: 1, Addr: "10.0.0.2"},
			want: false,
		},
		{
			name: "different_id",
			a:    Device{ID: 1, Addr: "10.0.0.1"},
			b:    Device{ID: 2, Addr: "10.0.0.1"},
			want: false,
		},
		{
			name: "zero_values",
			a:    Device{},
			b:    Device{},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestDeviceString(t *testing.T) {
	t.Parallel()

	d := Device{ID: 7, Addr: "10.0.0.7", Path: "/plant/line1"}
	assert.Equal(t, "7@10.0.0.7 /plant/line1", d.String())

	d.Path = ""
	assert.Equal(t, "7@10.0.0.7", d.String())
}
