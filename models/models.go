// Package models lists the forward models built into this repository.
package models

import (
	"github.com/hammal/asl/fwdmodel"
	"github.com/hammal/asl/quipss2"
)

// Default returns the registry of all built in models
func Default() *fwdmodel.Registry {
	return fwdmodel.NewRegistry(
		fwdmodel.Entry{Name: quipss2.Name, New: quipss2.NewInstance},
	)
}
