//go:build darwin && cgo

package power

/*
#cgo LDFLAGS: -framework IOKit -framework CoreFoundation
#include <stdlib.h>
#include <IOKit/pwr_mgt/IOPMLib.h>
#include <CoreFoundation/CoreFoundation.h>

static IOReturn dcCreateAssertion(const char *reason, IOPMAssertionID *assertionID) {
    CFStringRef name = CFStringCreateWithCString(kCFAllocatorDefault, reason, kCFStringEncodingUTF8);
    IOReturn result = IOPMAssertionCreateWithName(
        kIOPMAssertionTypeNoIdleSleep,
        kIOPMAssertionLevelOn,
        name,
        assertionID
    );
    CFRelease(name);
    return result;
}

static IOReturn dcReleaseAssertion(IOPMAssertionID assertionID) {
    return IOPMAssertionRelease(assertionID);
}
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"
)

func init() {
	register(BackendIOKit, func() Asserter { return &iokitAsserter{} })
}

// iokitAsserter keeps the IOPMAssertionID for as long as LevelOn is in
// effect. Releasing the ID right after creation would end the assertion.
type iokitAsserter struct {
	mu     sync.Mutex
	id     C.IOPMAssertionID
	active bool
}

func (a *iokitAsserter) Assert(level Level, reason string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if level == LevelOn {
		if a.active {
			return nil
		}
		cReason := C.CString(reason)
		defer C.free(unsafe.Pointer(cReason))

		var id C.IOPMAssertionID
		if result := C.dcCreateAssertion(cReason, &id); result != C.kIOReturnSuccess {
			return fmt.Errorf("%w: create: IOReturn=%d", ErrAssertion, result)
		}
		a.id = id
		a.active = true
		return nil
	}

	if !a.active {
		return nil
	}
	if result := C.dcReleaseAssertion(a.id); result != C.kIOReturnSuccess {
		return fmt.Errorf("%w: release assertion %d: IOReturn=%d", ErrAssertion, a.id, result)
	}
	a.active = false
	return nil
}
