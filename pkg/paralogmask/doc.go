// Package paralogmask comments out paralog blocks in a MAF stream.
//
// A block preceded by the line "# Paralog=1" is rewritten so that every
// physical line, the flag line included, starts with "# ". The blank line
// that ends the block is left as is. All other input is copied verbatim.
//
// Example usage:
//
//	stats, err := paralogmask.Mask(os.Stdin, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Fprintln(os.Stderr, stats.Blocks, "paralog blocks masked")
package paralogmask
