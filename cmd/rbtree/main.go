// Command rbtree builds red-black trees from lists of integers and prints their
// content and structure. It is a debugging companion for the rbtree package:
//
//	$ rbtree build 50 30 70 20 40 60 80
//	$ rbtree erase --erase 50 50 30 70 20 40 60 80
//	$ rbtree build --format yaml --file values.txt
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("rbtree failed")
		os.Exit(1)
	}
}
