package main

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// readValues parses the integers passed as command arguments, followed by the
// ones read from file when it is not empty.
func readValues(file string, args []string, stdin io.Reader) ([]int, error) {
	values := make([]int, 0, len(args))

	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value argument %q", arg)
		}
		values = append(values, v)
	}

	if file == "" {
		return values, nil
	}

	r := stdin
	if file != "-" {
		path, err := homedir.Expand(file)
		if err != nil {
			return nil, errors.Wrapf(err, "expanding %s", file)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening values file")
		}
		defer f.Close()
		r = f
	}

	return scanValues(values, r)
}

func scanValues(values []int, r io.Reader) ([]int, error) {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)

	for s.Scan() {
		v, err := strconv.Atoi(s.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", s.Text())
		}
		values = append(values, v)
	}

	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading values")
	}
	return values, nil
}
