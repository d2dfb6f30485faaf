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

//go:build linux

package joydevqueue

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/jetsetilly/retroinput/curated"
	"github.com/jetsetilly/retroinput/logger"
)

// JSIOCGNAME with a buffer length of 128
const ioctlName = 0x80006a13 + (128 << 16)

// device IDs start here to leave room for other input devices
const deviceBase = 0x20

type device struct {
	id   int
	path string
	name string
	file *os.File
}

func deviceName(f *os.File) (string, error) {
	buf := make([]byte, 128)
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), ioctlName, uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return "", errno
	}
	return unix.ByteSliceToString(buf), nil
}

// Open the joystick device file. Opening a device that is already open does
// nothing.
func (q *Queue) Open(path string) error {
	q.crit.Lock()
	defer q.crit.Unlock()

	if _, ok := q.devices[path]; ok {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return curated.Errorf(ErrOpen, err)
	}

	name, err := deviceName(f)
	if err != nil {
		logger.Logf(q.perm, "joydevqueue", "%s: name: %v", path, err)
		name = filepath.Base(path)
	}

	id, ok := q.ids[path]
	if !ok {
		id = deviceBase + q.nextID
		q.nextID++
		q.ids[path] = id
	}

	d := &device{
		id:   id,
		path: path,
		name: name,
		file: f,
	}
	q.devices[path] = d

	logger.Logf(q.perm, "joydevqueue", "%s: %s", path, name)

	go q.read(d, q.done)

	return nil
}

func (q *Queue) read(d *device, done chan struct{}) {
	for {
		var raw RawEvent
		if err := binary.Read(d.file, binary.LittleEndian, &raw); err != nil {
			q.remove(d, err)
			return
		}
		select {
		case q.events <- taggedEvent{device: d.id, raw: raw}:
		case <-done:
			return
		}
	}
}

func (q *Queue) remove(d *device, err error) {
	q.crit.Lock()
	defer q.crit.Unlock()

	if q.devices[d.path] != d {
		return
	}
	delete(q.devices, d.path)
	_ = d.file.Close()
	logger.Logf(q.perm, "joydevqueue", "%s: removed: %v", d.path, err)
}

// Close all open devices. Devices can be opened again afterwards.
func (q *Queue) Close() {
	q.crit.Lock()
	defer q.crit.Unlock()

	close(q.done)
	q.done = make(chan struct{})

	for p, d := range q.devices {
		_ = d.file.Close()
		delete(q.devices, p)
	}
}
