package main

import (
	"fmt"

	"github.com/joerp78/mark-and-sweep-project/cmd/gcsim/logger"
	"github.com/joerp78/mark-and-sweep-project/gc"
	"github.com/joerp78/mark-and-sweep-project/heap"
)

// driver maps user-typed object names onto collector addresses. The
// collector core never knows about names, only addresses; it is the
// driver's job to forget a name once its address comes back from a
// collection.
type driver struct {
	collector *gc.Collector
	objects   map[string]uintptr
}

func newDriver(h *heap.Heap) *driver {
	return &driver{
		collector: gc.New(h),
		objects:   make(map[string]uintptr),
	}
}

func (d *driver) close() error {
	return d.collector.Close()
}

func (d *driver) alloc(name string, size uintptr) (string, error) {
	if _, exists := d.objects[name]; exists {
		return "", fmt.Errorf("object %q already exists", name)
	}

	p, err := d.collector.Allocate(size)
	if err != nil {
		logger.Warn("allocation failed", "name", name, "size", size, "error", err)
		return "", err
	}

	d.objects[name] = p
	return fmt.Sprintf("allocated %q with %d bytes", name, size), nil
}

func (d *driver) addRoot(name string) (string, error) {
	p, ok := d.objects[name]
	if !ok {
		return "", fmt.Errorf("unknown object: %s", name)
	}
	d.collector.AddRoot(p)
	return fmt.Sprintf("added external reference to %q", name), nil
}

func (d *driver) addNested(from, to string) (string, error) {
	src, ok := d.objects[from]
	if !ok {
		return "", fmt.Errorf("unknown object: %s", from)
	}
	dst, ok := d.objects[to]
	if !ok {
		return "", fmt.Errorf("unknown object: %s", to)
	}
	if err := d.collector.AddNestedReference(src, dst); err != nil {
		return "", err
	}
	return fmt.Sprintf("added nested reference: %s -> %s", from, to), nil
}

func (d *driver) deleteRoot(name string) (string, error) {
	p, ok := d.objects[name]
	if !ok {
		return "", fmt.Errorf("unknown object: %s", name)
	}
	d.collector.DeleteRoot(p)
	return fmt.Sprintf("deleted external reference to %q", name), nil
}

// forget drops every name bound to a reclaimed address, keeping the
// driver's object table in sync with the collector after a collection.
func (d *driver) forget(reclaimed []uintptr) {
	if len(reclaimed) == 0 {
		return
	}
	dead := make(map[uintptr]bool, len(reclaimed))
	for _, p := range reclaimed {
		dead[p] = true
	}
	for name, p := range d.objects {
		if dead[p] {
			delete(d.objects, name)
		}
	}
}

func (d *driver) collectRC() (int, string) {
	reclaimed := d.collector.CollectRC()
	d.forget(reclaimed)
	return len(reclaimed), "reference counting GC completed"
}

func (d *driver) collectMS() (int, string) {
	reclaimed := d.collector.CollectMS()
	d.forget(reclaimed)
	return len(reclaimed), "mark and sweep GC completed"
}

func (d *driver) availableMemory() uintptr {
	return d.collector.AvailableMemory()
}

func (d *driver) printFreeList() string {
	return d.collector.PrintFreeList()
}

// list returns the driver's name->address bindings for the "list"
// command. Map iteration order is randomized by Go, so callers that need
// stable output should sort the result themselves.
func (d *driver) list() map[string]uintptr {
	out := make(map[string]uintptr, len(d.objects))
	for k, v := range d.objects {
		out[k] = v
	}
	return out
}
