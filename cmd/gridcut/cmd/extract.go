package cmd

import (
	encbin "encoding/binary"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/depshield-user-testing/sis/hyperrect"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract a sub-region from a raw gridded file",
	Long: `Extract reads the selected sub-region out of a raw binary file storing
an n-dimensional array linearly, axis 0 fastest, and prints the values in
axis-0-fastest order.

Example:
  gridcut extract grid.bin --shape 360,180 --lower 10,20 --upper 110,120 \
    --step 2,2 --dtype float32 --order little`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		region, err := regionFromFlags(cmd)
		if err != nil {
			return err
		}

		// Stride widening, e.g. --pad 1=4 for a padded record axis.
		pads, _ := cmd.Flags().GetStringArray("pad")
		for _, pad := range pads {
			axis, extra, err := parsePad(pad)
			if err != nil {
				return err
			}
			if err := region.IncreaseStride(axis, extra); err != nil {
				return fmt.Errorf("applying --pad %s: %w", pad, err)
			}
		}

		dtypeFlag, _ := cmd.Flags().GetString("dtype")
		dtype, err := hyperrect.ParseDataType(dtypeFlag)
		if err != nil {
			return err
		}

		orderFlag, _ := cmd.Flags().GetString("order")
		var order encbin.ByteOrder
		switch orderFlag {
		case "little":
			order = encbin.LittleEndian
		case "big":
			order = encbin.BigEndian
		default:
			return fmt.Errorf("unknown byte order %q (want little or big)", orderFlag)
		}

		origin, _ := cmd.Flags().GetInt64("origin")

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		reader, err := hyperrect.NewReader(f, region, dtype,
			hyperrect.WithByteOrder(order),
			hyperrect.WithOrigin(origin),
		)
		if err != nil {
			return err
		}

		start := time.Now()
		values, err := readValues(reader, dtype)
		if err != nil {
			return err
		}
		slog.Debug("extracted sub-region",
			"elements", len(values),
			"axes", region.Dimension(),
			"duration", time.Since(start))

		for _, v := range values {
			fmt.Println(v)
		}
		return nil
	},
}

// readValues dispatches to the typed read matching the element type and
// returns the values as printable strings.
func readValues(r *hyperrect.Reader, dtype hyperrect.DataType) ([]string, error) {
	switch dtype {
	case hyperrect.Uint8:
		return format(r.ReadUint8s())
	case hyperrect.Int8:
		return format(r.ReadInt8s())
	case hyperrect.Uint16:
		return format(r.ReadUint16s())
	case hyperrect.Int16:
		return format(r.ReadInt16s())
	case hyperrect.Uint32:
		return format(r.ReadUint32s())
	case hyperrect.Int32:
		return format(r.ReadInt32s())
	case hyperrect.Uint64:
		return format(r.ReadUint64s())
	case hyperrect.Int64:
		return format(r.ReadInt64s())
	case hyperrect.Float32:
		return format(r.ReadFloat32s())
	case hyperrect.Float64:
		return format(r.ReadFloat64s())
	default:
		return nil, fmt.Errorf("unsupported dtype %v", dtype)
	}
}

func format[T any](values []T, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out, nil
}

// parsePad parses an axis=extra stride adjustment.
func parsePad(s string) (int, int64, error) {
	axisStr, extraStr, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --pad %q (want axis=extra)", s)
	}
	axis, err := strconv.Atoi(axisStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --pad axis %q: %w", axisStr, err)
	}
	extra, err := strconv.ParseInt(extraStr, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --pad amount %q: %w", extraStr, err)
	}
	return axis, extra, nil
}

func init() {
	extractCmd.Flags().String("dtype", "float64", "Element type (uint8..float64)")
	extractCmd.Flags().String("order", "little", "Byte order of stored elements (little or big)")
	extractCmd.Flags().Int64("origin", 0, "Byte offset of element (0,...,0) in the file")
	extractCmd.Flags().StringArray("pad", nil, "Widen an axis skip, axis=extra (repeatable)")
	rootCmd.AddCommand(extractCmd)
}
