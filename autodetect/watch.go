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

package autodetect

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/logger"
)

// ErrWatch is the pattern for errors returned by Watch.
const ErrWatch = "autodetect: watch: %v"

// Watch reloads the profiles file whenever it changes. It blocks until the
// context is cancelled.
//
// Reloading only affects devices that are bound after the reload. Slots that
// have already been set up keep their bindings.
func (p *Profiles) Watch(ctx context.Context) error {
	return p.watch(ctx, nil)
}

// the reloaded channel is signalled after every reload attempt. used by tests
func (p *Profiles) watch(ctx context.Context, reloaded chan<- error) error {
	if p.path == "" {
		<-ctx.Done()
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return curated.Errorf(ErrWatch, err)
	}
	defer w.Close()

	// the directory is watched rather than the file because many editors save
	// by replacing the file
	err = w.Add(filepath.Dir(p.path))
	if err != nil {
		return curated.Errorf(ErrWatch, err)
	}

	target := filepath.Clean(p.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) {
				continue
			}

			err := p.Reload()
			if err != nil {
				logger.Log(p.perm, "autodetect", err.Error())
			}
			if reloaded != nil {
				select {
				case reloaded <- err:
				default:
				}
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Logf(p.perm, "autodetect", "watch: %v", err)
		}
	}
}
