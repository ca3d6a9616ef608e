package response

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// copyInto maps a read view onto its response shape by field name.
func copyInto[T any](src any) *T {
	dst := new(T)
	if err := copier.Copy(dst, src); err != nil {
		slog.Error("response mapping failed", "error", err.Error())
	}
	return dst
}

func copyList[T any, S any](items []S) []*T {
	out := make([]*T, len(items))
	for i, it := range items {
		out[i] = copyInto[T](it)
	}
	return out
}
