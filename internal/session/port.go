package session

import (
	"bufio"
	"io"
	"strings"
)

// Port is the interactive boundary of a session.
type Port interface {
	ReadLine() (string, error)
	Write(s string)
}

type Console struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// ReadLine returns the next line without its terminator. A final line with no
// newline is returned before io.EOF.
func (c *Console) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Write(s string) {
	_, _ = io.WriteString(c.writer, s)
}
