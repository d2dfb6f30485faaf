// This file is part of retroinput.
//
// retroinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// retroinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with retroinput.  If not, see <https://www.gnu.org/licenses/>.

package joydevqueue

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/logger"
)

func isJoystick(path string) bool {
	return strings.HasPrefix(filepath.Base(path), "js")
}

// Scan opens every joystick device in the directory. Devices that cannot be
// opened are logged and skipped. Returns the number of devices that are open.
func (q *Queue) Scan(dir string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "js*"))
	if err != nil {
		return 0, curated.Errorf(ErrOpen, err)
	}
	for _, m := range matches {
		if err := q.Open(m); err != nil {
			logger.Log(q.perm, "joydevqueue", err.Error())
		}
	}
	return q.Devices(), nil
}

// Watch the directory for joystick devices being added. It blocks until the
// context is cancelled. Removed devices are noticed by the goroutine reading
// the device.
func (q *Queue) Watch(ctx context.Context, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return curated.Errorf(ErrWatch, err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return curated.Errorf(ErrWatch, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) || !isJoystick(ev.Name) {
				continue
			}
			if err := q.Open(ev.Name); err != nil {
				logger.Log(q.perm, "joydevqueue", err.Error())
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Logf(q.perm, "joydevqueue", "watch: %v", err)
		}
	}
}
