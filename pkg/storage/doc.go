// Package storage manages the local card files.
//
// The filesystem is the index: a card counts as downloaded exactly when a
// file with its name exists in the output directory. Nothing is cached in
// memory, so files removed between runs are fetched again.
//
// Writes go to a temporary file in the same directory which is then renamed
// over the target, so an interrupted download never leaves a truncated card
// that a later run would mistake for a complete one.
//
// Usage:
//
//	manager, err := storage.NewManager(filepath.Join("images", "cards"))
//	if err != nil {
//	    return err
//	}
//
//	exists, err := manager.Exists("wildbg.jpg")
//	if err == nil && !exists {
//	    err = manager.Save(bytes.NewReader(data), "wildbg.jpg")
//	}
package storage
