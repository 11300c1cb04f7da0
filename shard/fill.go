package shard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// progressInterval is how many addresses are written between progress
// callbacks.
const progressInterval = 5000

// WriteOptions controls how a filled address space is persisted.
type WriteOptions struct {
	// PackAsList wraps each record in a one-element JSON array instead of
	// writing the bare object. Serialization shape only; the assignment is
	// unchanged.
	PackAsList bool

	// Workers is the number of concurrent writer goroutines. Values <= 1
	// select the sequential reference path. Addresses are independent, so
	// workers need no coordination beyond idempotent directory creation.
	Workers int

	// Progress, when non-nil, is called every 5000 written addresses with
	// the running count and the total slot count.
	Progress func(done, total int)
}

// Fill assigns every address in [0, 16^width) to an item by cycling the
// input list. The mapping is total: when the space is larger than the list,
// items repeat; when it is smaller, trailing items go unused. Empty input
// yields nil.
func Fill(items []Item, width int) map[string]Item {
	if len(items) == 0 {
		return nil
	}
	total := Capacity(width)
	mapping := make(map[string]Item, total)
	for addr := range total {
		mapping[FormatAddress(addr, width)] = items[addr%len(items)]
	}
	return mapping
}

// EncodeItem produces the on-disk form of one record: compact JSON, UTF-8,
// with non-ASCII text emitted unescaped even when the source file carried
// \uXXXX escapes. The record is decoded and re-encoded, so object keys come
// out in sorted order; numbers pass through verbatim via json.Number.
func EncodeItem(item Item, packAsList bool) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(item))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if packAsList {
		v = []any{v}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteTree persists one file per address under dir according to the plan.
// Every write is independent and the output depends only on the item order
// and the plan, so rerunning over identical input produces byte-identical
// trees. It returns the number of files written. Empty input is a no-op.
func WriteTree(dir string, items []Item, plan Plan, opts WriteOptions) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	if opts.Workers > 1 {
		return writeConcurrent(dir, items, plan, opts)
	}
	return writeSequential(dir, items, plan, opts)
}

func writeSequential(dir string, items []Item, plan Plan, opts WriteOptions) (int, error) {
	for addr := range plan.Capacity {
		if err := writeAddress(dir, addr, items, plan, opts.PackAsList); err != nil {
			return addr, err
		}
		if opts.Progress != nil && (addr+1)%progressInterval == 0 {
			opts.Progress(addr+1, plan.Capacity)
		}
	}
	return plan.Capacity, nil
}

func writeConcurrent(dir string, items []Item, plan Plan, opts WriteOptions) (int, error) {
	addrChan := make(chan int, opts.Workers)
	doneChan := make(chan struct{}, opts.Workers)
	errChan := make(chan error, opts.Workers)
	var wg sync.WaitGroup

	wg.Add(opts.Workers)
	for range opts.Workers {
		go func() {
			defer wg.Done()
			for addr := range addrChan {
				if err := writeAddress(dir, addr, items, plan, opts.PackAsList); err != nil {
					errChan <- err
					continue
				}
				doneChan <- struct{}{}
			}
		}()
	}

	go func() {
		defer close(addrChan)
		for addr := range plan.Capacity {
			addrChan <- addr
		}
	}()

	go func() {
		wg.Wait()
		close(doneChan)
		close(errChan)
	}()

	var written int
	var firstErr error
	doneOpen, errOpen := true, true
	for doneOpen || errOpen {
		select {
		case _, ok := <-doneChan:
			if !ok {
				doneOpen = false
				continue
			}
			written++
			if opts.Progress != nil && written%progressInterval == 0 {
				opts.Progress(written, plan.Capacity)
			}
		case err, ok := <-errChan:
			if !ok {
				errOpen = false
				continue
			}
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return written, firstErr
}

// writeAddress persists the record for one address. Directory creation is
// idempotent so concurrent writers can race on shared shard directories.
func writeAddress(dir string, addr int, items []Item, plan Plan, packAsList bool) error {
	hexStr := FormatAddress(addr, plan.Width)
	path := FilePath(dir, hexStr, plan.Depth)
	if plan.Depth > 0 {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating shard directory for %s: %w", hexStr, err)
		}
	}
	data, err := EncodeItem(items[addr%len(items)], packAsList)
	if err != nil {
		return fmt.Errorf("encoding record for address %s: %w", hexStr, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
