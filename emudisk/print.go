package emudisk

import (
	"context"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

var dumper = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Print writes a human-readable dump of every allocated sector to w.
func (d *Disk) Print(ctx context.Context, w io.Writer) error {
	d.mu.RLock()
	kind := "volatile"
	if d.options.dirPath != "" {
		kind = fmt.Sprintf("persistent in %q", d.options.dirPath)
	}
	sectors := d.options.keydir.Size()
	closed := d.closed
	d.mu.RUnlock()
	if closed {
		return ErrDiskClosed
	}

	if _, err := printer.Fprintf(w, "disk %s (%s): sector size %d, %d sectors allocated (%d bytes)\n",
		d.meta.ID, kind, d.sectorSize, sectors, sectors*d.sectorSize); err != nil {
		return err
	}

	return d.Fold(ctx, func(lba uint32, data []byte) error {
		if _, err := fmt.Fprintf(w, "sector %d:\n", lba); err != nil {
			return err
		}
		dumper.Fdump(w, data)
		return nil
	})
}
