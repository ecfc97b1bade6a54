// Package mdicons embeds the alpha channel of the material-design-icons
// baseline rasters.
//
// The package is generated by cmd/gen-icons from a local checkout of the
// material-design-icons repository:
//
//	go generate github.com/kenshaw/mdicons
//
// Every icon is addressable as a value, by full path, or by bare name:
//
//	id := mdicons.Android.Action.AccountBalance
//	id, ok := mdicons.ByPath("android/action/account_balance")
//	id, ok := mdicons.ByName("account_balance")
//
// id.Alpha() returns id.Width*id.Height opacity bytes in row-major order.
// The blob is embedded compressed and decompressed on first use. Build with
// the mdicons_uncompressed tag to embed the raw blob instead.
package mdicons

//go:generate go run ./cmd/gen-icons --out .
