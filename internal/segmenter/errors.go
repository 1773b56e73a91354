package segmenter

import (
	"errors"
	"fmt"
)

var (
	ErrSegmentation = errors.New("segmentation failed")
	ErrEmptyInput   = fmt.Errorf("%w: empty input", ErrSegmentation)
	ErrNoChunks     = fmt.Errorf("%w: no chunks produced", ErrSegmentation)
)
