package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"deedles.dev/xqueue"
)

var (
	errNoQueue = errors.New("no queue selected")
	errEmpty   = errors.New("queue is empty")
	errUsage   = errors.New("wrong number of arguments")
)

const randomValue = "RAND"

type command struct {
	run   func(args []string) error
	usage string
	help  string
}

// interp runs qtest commands against a group of queues, one of which
// is the current queue.
type interp struct {
	out  io.Writer
	log  *slog.Logger
	cfg  Config
	rand *rand.Rand

	group xqueue.Group
	cur   *xqueue.Context

	cmds   map[string]command
	failed int
	done   bool
}

func newInterp(out io.Writer, log *slog.Logger, cfg Config) *interp {
	it := interp{
		out:  out,
		log:  log,
		cfg:  cfg,
		rand: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
	}

	it.cmds = map[string]command{
		"new":      {run: it.cmdNew, usage: "new", help: "Create a new queue and select it"},
		"free":     {run: it.cmdFree, usage: "free", help: "Free the current queue"},
		"prev":     {run: it.cmdPrev, usage: "prev", help: "Select the previous queue"},
		"next":     {run: it.cmdNext, usage: "next", help: "Select the next queue"},
		"ih":       {run: it.insert((*xqueue.Queue).InsertHead), usage: "ih str [n]", help: "Insert str at the head n times, RAND for random strings"},
		"it":       {run: it.insert((*xqueue.Queue).InsertTail), usage: "it str [n]", help: "Insert str at the tail n times, RAND for random strings"},
		"rh":       {run: it.remove((*xqueue.Queue).RemoveHead), usage: "rh [str]", help: "Remove from the head, optionally checking the value"},
		"rt":       {run: it.remove((*xqueue.Queue).RemoveTail), usage: "rt [str]", help: "Remove from the tail, optionally checking the value"},
		"size":     {run: it.cmdSize, usage: "size", help: "Print the size of the queue"},
		"dm":       {run: it.cmdDeleteMiddle, usage: "dm", help: "Delete the middle element"},
		"dedup":    {run: it.cmdDedup, usage: "dedup", help: "Delete runs of adjacent duplicates"},
		"swap":     {run: it.edit((*xqueue.Queue).SwapPairs), usage: "swap", help: "Swap neighbouring pairs"},
		"reverse":  {run: it.edit((*xqueue.Queue).Reverse), usage: "reverse", help: "Reverse the queue"},
		"reverseK": {run: it.cmdReverseK, usage: "reverseK k", help: "Reverse every block of k elements"},
		"sort":     {run: it.cmdSort, usage: "sort", help: "Sort the queue"},
		"ascend":   {run: it.filter((*xqueue.Queue).FilterAscend), usage: "ascend", help: "Keep a non-decreasing suffix-minimal subsequence"},
		"descend":  {run: it.filter((*xqueue.Queue).FilterDescend), usage: "descend", help: "Keep a non-increasing suffix-maximal subsequence"},
		"merge":    {run: it.cmdMerge, usage: "merge", help: "Merge every queue into the first one, sorted"},
		"show":     {run: it.cmdShow, usage: "show", help: "Print every queue"},
		"option":   {run: it.cmdOption, usage: "option [name value]", help: "Print or set descend, fail, or length"},
		"help":     {run: it.cmdHelp, usage: "help", help: "Print this list"},
		"quit":     {run: it.cmdQuit, usage: "quit", help: "Stop reading commands"},
	}

	return &it
}

// Run executes the commands read from r until it is exhausted or a
// quit command is run. Failing commands are reported to the output and
// do not stop execution, but cause Run to return an error at the end.
func (it *interp) Run(r io.Reader) error {
	s := bufio.NewScanner(r)
	for !it.done && s.Scan() {
		it.exec(s.Text())
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}

	if it.failed > 0 {
		return fmt.Errorf("%v commands failed", it.failed)
	}
	return nil
}

func (it *interp) exec(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return
	}
	if it.cfg.Echo {
		fmt.Fprintf(it.out, "cmd> %v\n", line)
	}

	name, args := fields[0], fields[1:]
	cmd, ok := it.cmds[name]
	if !ok {
		it.fail(name, fmt.Errorf("unknown command %q", name))
		return
	}

	it.log.Debug("running command", "name", name, "args", args)
	if err := cmd.run(args); err != nil {
		if errors.Is(err, errUsage) {
			err = fmt.Errorf("%w, usage: %v", err, cmd.usage)
		}
		it.fail(name, err)
	}
}

func (it *interp) fail(name string, err error) {
	it.failed++
	it.log.Debug("command failed", "name", name, "err", err)
	fmt.Fprintf(it.out, "ERROR: %v\n", err)
}

// allocate is installed as the allocator of every queue.
func (it *interp) allocate() bool {
	return it.rand.Float64()*100 >= it.cfg.FailRate
}

func (it *interp) queue() (*xqueue.Queue, error) {
	if it.cur == nil {
		return nil, errNoQueue
	}
	return it.cur.Queue, nil
}

func (it *interp) show() {
	if it.cur == nil {
		fmt.Fprintln(it.out, "l = NULL")
		return
	}
	fmt.Fprintf(it.out, "l = %v\n", it.cur.Queue.Values())
}

func (it *interp) randomString() string {
	b := make([]byte, 5+it.rand.IntN(6))
	for i := range b {
		b[i] = byte('a' + it.rand.IntN(26))
	}
	return string(b)
}

func noArgs(run func() error) func([]string) error {
	return func(args []string) error {
		if len(args) != 0 {
			return errUsage
		}
		return run()
	}
}

func (it *interp) cmdNew(args []string) error {
	return noArgs(func() error {
		q := xqueue.New(xqueue.WithAllocator(it.allocate))
		if q == nil {
			return xqueue.ErrAlloc
		}

		it.cur = it.group.Add(q)
		it.show()
		return nil
	})(args)
}

func (it *interp) cmdFree(args []string) error {
	return noArgs(func() error {
		if it.cur == nil {
			return errNoQueue
		}

		next := it.cur.Next()
		if next == it.cur {
			next = nil
		}

		it.cur.Queue.Free()
		it.group.Remove(it.cur)
		it.cur = next
		it.show()
		return nil
	})(args)
}

func (it *interp) cmdPrev(args []string) error {
	return noArgs(func() error {
		if it.cur == nil {
			return errNoQueue
		}
		it.cur = it.cur.Prev()
		it.show()
		return nil
	})(args)
}

func (it *interp) cmdNext(args []string) error {
	return noArgs(func() error {
		if it.cur == nil {
			return errNoQueue
		}
		it.cur = it.cur.Next()
		it.show()
		return nil
	})(args)
}

func (it *interp) insert(op func(*xqueue.Queue, string) error) func([]string) error {
	return func(args []string) error {
		if len(args) < 1 || len(args) > 2 {
			return errUsage
		}
		q, err := it.queue()
		if err != nil {
			return err
		}

		n := 1
		if len(args) == 2 {
			n, err = strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid count %q", args[1])
			}
		}

		for range n {
			v := args[0]
			if v == randomValue {
				v = it.randomString()
			}
			if err := op(q, v); err != nil {
				it.show()
				return fmt.Errorf("insert %q: %w", v, err)
			}
		}
		it.show()
		return nil
	}
}

func (it *interp) remove(op func(*xqueue.Queue, []byte) *xqueue.Element) func([]string) error {
	return func(args []string) error {
		if len(args) > 1 {
			return errUsage
		}
		q, err := it.queue()
		if err != nil {
			return err
		}

		buf := make([]byte, it.cfg.StringLength+1)
		e := op(q, buf)
		if e == nil {
			return errEmpty
		}
		defer e.Release()

		got := string(buf[:bytes.IndexByte(buf, 0)])
		fmt.Fprintf(it.out, "Removed %v from queue\n", got)
		it.show()

		if len(args) == 1 && got != args[0] {
			return fmt.Errorf("removed value %q, expected %q", got, args[0])
		}
		return nil
	}
}

func (it *interp) cmdSize(args []string) error {
	return noArgs(func() error {
		q, err := it.queue()
		if err != nil {
			return err
		}
		fmt.Fprintf(it.out, "Queue size = %v\n", q.Size())
		return nil
	})(args)
}

func (it *interp) cmdDeleteMiddle(args []string) error {
	return noArgs(func() error {
		q, err := it.queue()
		if err != nil {
			return err
		}
		if !q.DeleteMiddle() {
			return errEmpty
		}
		it.show()
		return nil
	})(args)
}

func (it *interp) cmdDedup(args []string) error {
	return noArgs(func() error {
		q, err := it.queue()
		if err != nil {
			return err
		}
		if !q.DeleteAdjacentDuplicates() {
			return errEmpty
		}
		it.show()
		return nil
	})(args)
}

func (it *interp) edit(op func(*xqueue.Queue)) func([]string) error {
	return noArgs(func() error {
		q, err := it.queue()
		if err != nil {
			return err
		}
		op(q)
		it.show()
		return nil
	})
}

func (it *interp) cmdReverseK(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	k, err := strconv.Atoi(args[0])
	if err != nil || k < 1 {
		return fmt.Errorf("invalid block size %q", args[0])
	}

	return it.edit(func(q *xqueue.Queue) { q.ReverseInBlocks(k) })(nil)
}

func (it *interp) cmdSort(args []string) error {
	return it.edit(func(q *xqueue.Queue) { q.Sort(it.cfg.Descend) })(args)
}

func (it *interp) filter(op func(*xqueue.Queue) int) func([]string) error {
	return noArgs(func() error {
		q, err := it.queue()
		if err != nil {
			return err
		}
		n := op(q)
		fmt.Fprintf(it.out, "Remaining elements = %v\n", n)
		it.show()
		return nil
	})
}

func (it *interp) cmdMerge(args []string) error {
	return noArgs(func() error {
		if it.cur == nil {
			return errNoQueue
		}

		n := it.group.Merge(it.cfg.Descend)
		it.cur = it.group.First()
		fmt.Fprintf(it.out, "Merged size = %v\n", n)
		it.show()
		return nil
	})(args)
}

func (it *interp) cmdShow(args []string) error {
	return noArgs(func() error {
		for c := range it.group.Contexts() {
			mark := " "
			if c == it.cur {
				mark = "*"
			}
			fmt.Fprintf(it.out, "%vq %v: %v\n", mark, c.ID, c.Queue.Values())
		}
		return nil
	})(args)
}

func (it *interp) cmdOption(args []string) error {
	switch len(args) {
	case 0:
		fmt.Fprintf(it.out, "descend = %v\n", it.cfg.Descend)
		fmt.Fprintf(it.out, "fail = %v\n", it.cfg.FailRate)
		fmt.Fprintf(it.out, "length = %v\n", it.cfg.StringLength)
		return nil
	case 2:
	default:
		return errUsage
	}

	cfg := it.cfg
	name, value := args[0], args[1]
	var err error
	switch name {
	case "descend":
		cfg.Descend, err = strconv.ParseBool(value)
	case "fail":
		cfg.FailRate, err = strconv.ParseFloat(value, 64)
	case "length":
		cfg.StringLength, err = strconv.Atoi(value)
	default:
		return fmt.Errorf("unknown option %q", name)
	}
	if err != nil {
		return fmt.Errorf("option %v: %w", name, err)
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	it.cfg = cfg
	return nil
}

func (it *interp) cmdHelp(args []string) error {
	return noArgs(func() error {
		names := make([]string, 0, len(it.cmds))
		for name := range it.cmds {
			names = append(names, name)
		}
		slices.Sort(names)

		for _, name := range names {
			cmd := it.cmds[name]
			fmt.Fprintf(it.out, "  %-20v| %v\n", cmd.usage, cmd.help)
		}
		return nil
	})(args)
}

func (it *interp) cmdQuit(args []string) error {
	return noArgs(func() error {
		it.done = true
		return nil
	})(args)
}
