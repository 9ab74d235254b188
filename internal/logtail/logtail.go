package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// Tail returns at most maxLines from the end of the backend log at path.
// A missing file is not an error: the backend simply hasn't written yet.
func Tail(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open backend log: %w", err)
	}
	defer file.Close()

	// Ring buffer keeps memory bounded however large the log grows.
	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	total := 0
	for scanner.Scan() {
		ring[total%maxLines] = scanner.Text()
		total++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read backend log: %w", err)
	}

	if total == 0 {
		return nil, nil
	}
	count := total
	if count > maxLines {
		count = maxLines
	}
	lines := make([]string, count)
	start := total - count
	for i := 0; i < count; i++ {
		lines[i] = ring[(start+i)%maxLines]
	}
	return lines, nil
}
