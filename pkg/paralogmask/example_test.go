package paralogmask_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/bft-labs/paralogmask/pkg/paralogmask"
)

func ExampleMask() {
	in := strings.NewReader(`# Paralog=1
a score=0 pctid=0.0
s evoHg19.chr20            795 1 + 73767698 A
s evoHg19-evoPanTro2.chr20 794 1 + 73522843 G

a score=0 pctid=0.0
s evoHg19.chr20            796 1 + 73767698 C

`)
	stats, err := paralogmask.Mask(in, os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("blocks:", stats.Blocks)
	// Output:
	// # # Paralog=1
	// # a score=0 pctid=0.0
	// # s evoHg19.chr20            795 1 + 73767698 A
	// # s evoHg19-evoPanTro2.chr20 794 1 + 73522843 G
	//
	// a score=0 pctid=0.0
	// s evoHg19.chr20            796 1 + 73767698 C
	//
	// blocks: 1
}
