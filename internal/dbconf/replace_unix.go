//go:build !windows

package dbconf

import "github.com/google/renameio/v2"

func replaceFile(path string, data []byte) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o600))
	if err != nil {
		return err
	}
	defer pending.Cleanup()

	if _, err := pending.Write(data); err != nil {
		return err
	}

	return pending.CloseAtomicallyReplace()
}
