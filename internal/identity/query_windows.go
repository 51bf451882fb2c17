//go:build windows

package identity

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// appmodelErrorNoPackage is APPMODEL_ERROR_NO_PACKAGE from winerror.h.
const appmodelErrorNoPackage = syscall.Errno(15700)

var procGetCurrentPackageFamilyName = windows.NewLazySystemDLL("kernel32.dll").
	NewProc("GetCurrentPackageFamilyName")

// CurrentPackageFamilyName calls GetCurrentPackageFamilyName, first to size
// the buffer and then to fill it.
func CurrentPackageFamilyName() (string, error) {
	if err := procGetCurrentPackageFamilyName.Find(); err != nil {
		// Before Windows 8 there is no package model at all.
		return "", fmt.Errorf("%w: %w", ErrNoPackageIdentity, err)
	}

	var length uint32
	r, _, _ := procGetCurrentPackageFamilyName.Call(uintptr(unsafe.Pointer(&length)), 0)
	switch code := syscall.Errno(r); {
	case code == appmodelErrorNoPackage:
		return "", ErrNoPackageIdentity
	case code != windows.ERROR_INSUFFICIENT_BUFFER:
		return "", fmt.Errorf("size package family name: %w", code)
	}

	if length == 0 {
		return "", errors.New("empty package family name")
	}
	buf := make([]uint16, length)
	r, _, _ = procGetCurrentPackageFamilyName.Call(
		uintptr(unsafe.Pointer(&length)),
		uintptr(unsafe.Pointer(&buf[0])),
	)
	if code := syscall.Errno(r); code != windows.ERROR_SUCCESS {
		return "", fmt.Errorf("read package family name: %w", code)
	}

	name := windows.UTF16ToString(buf)
	if name == "" {
		return "", errors.New("empty package family name")
	}
	return name, nil
}
