package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/hpcloud/tail"
	"github.com/spf13/cobra"
)

var (
	num    int
	feed   bool
	filter string
)

// LogCommand prints the mutation journal
var LogCommand = &cobra.Command{
	Use:   "logs",
	Short: "Show the mutation journal of tiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return logs(cmd.OutOrStdout(), filepath.Join(c.Log.Path, c.Log.Name))
	},
}

func logs(out io.Writer, logFile string) error {
	f, err := os.Open(logFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if feed && num == 0 {
		num = 5
	}
	lines, err := tailLines(f, num)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if matchFilter(line) {
			fmt.Fprintln(out, line)
		}
	}

	if !feed {
		return nil
	}

	stat, err := f.Stat()
	if err != nil {
		return err
	}
	tailer, err := tail.TailFile(logFile, tail.Config{
		ReOpen:    false,
		Follow:    true,
		Location:  &tail.SeekInfo{Offset: stat.Size(), Whence: io.SeekStart},
		MustExist: true,
		Poll:      true,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return err
	}
	defer tailer.Stop()

	quit := sign()
	for {
		select {
		case line, ok := <-tailer.Lines:
			if !ok {
				return tailer.Err()
			}
			if matchFilter(line.Text) {
				fmt.Fprintln(out, line.Text)
			}
		case <-quit:
			return nil
		}
	}
}

func matchFilter(line string) bool {
	return filter == "" || strings.Contains(line, "] "+filter+" ")
}

// tailLines returns the last n lines of r, oldest first, reading backwards in blocks.
func tailLines(r io.ReadSeeker, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}

	const blockSize = 4096
	var buf []byte
	offset := end
	// one extra newline is needed to know the oldest wanted line is complete
	for offset > 0 && bytes.Count(buf, []byte{'\n'}) <= n {
		size := int64(blockSize)
		if offset < size {
			size = offset
		}
		offset -= size
		block := make([]byte, size)
		if _, err := r.Seek(offset, io.SeekStart); err != nil {
			return nil, err
		}
		if _, err := io.ReadFull(r, block); err != nil {
			return nil, err
		}
		buf = append(block, buf...)
	}

	lines := strings.Split(strings.TrimRight(string(buf), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

func sign() <-chan os.Signal {
	c := make(chan os.Signal, 2)

	signals := []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}

	// 监听信号, 判断是否忽略 sighup 信号量
	if !signal.Ignored(syscall.SIGHUP) {
		signals = append(signals, syscall.SIGHUP)
	}

	signal.Notify(c, signals...)

	return c
}

func init() {
	LogCommand.Flags().IntVarP(&num, "number", "n", 5, "get last number line of logs")
	LogCommand.Flags().StringP("config", "c", "./tiles.conf", "config tiles file")
	LogCommand.Flags().BoolVarP(&feed, "feed", "f", false, "feed logs")
	LogCommand.Flags().StringVar(&filter, "action", "", "only show one action, e.g. add-row")
	RootCmd.AddCommand(LogCommand)
}
