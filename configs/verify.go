package configs

import (
	"errors"
	"fmt"
	"github.com/logrusorgru/aurora"
	"os"
)

var (
	ok   = aurora.Bold(aurora.Green("[ OK ]"))
	fail = aurora.Bold(aurora.Red("[FAIL]"))
	warn = aurora.Bold(aurora.Yellow("[WARN]"))
)

func PrintResult(msg string, err error) {
	if err == nil {
		fmt.Printf("%-60s%s\n", msg, ok)
		return
	} else {
		fmt.Printf("%-60s%s : %s\n", msg, fail, err)
	}
}

func PrintWarning(msg string, warning string) {
	fmt.Printf("%-60s%s : %s\n", msg, warn, warning)
}

func CheckFile(path string) {
	msg := fmt.Sprintf("checking whether %s is readable", path)
	f, err := os.Open(path)
	if err == nil {
		var info os.FileInfo
		info, err = f.Stat()
		if err == nil && info.IsDir() {
			err = errors.New("is a directory")
		}
		_ = f.Close()
	}
	PrintResult(msg, err)
}

func CheckPositive(name string, value float64) {
	msg := fmt.Sprintf("checking %s : %v", name, value)
	var err error = nil
	if value <= 0 {
		err = errors.New("must be positive")
	}
	PrintResult(msg, err)
}
