package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/duiker-sh/duiker/internal/config"
	"github.com/duiker-sh/duiker/internal/store"
)

// renderTimestamp renders an epoch timestamp the way the user's shell
// renders history: through HISTTIMEFORMAT when set, raw epoch otherwise.
func renderTimestamp(cfg *config.Config, epoch int64) string {
	if cfg.TimeFormat == "" {
		return strconv.FormatInt(epoch, 10)
	}
	return strftime.Format(cfg.TimeFormat, time.Unix(epoch, 0))
}

// writeTSV prints records as timestamp<TAB>command lines.
func writeTSV(w io.Writer, cfg *config.Config, commands []store.Command) error {
	for _, cmd := range commands {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", renderTimestamp(cfg, cmd.Timestamp), cmd.Command); err != nil {
			return err
		}
	}
	return nil
}
