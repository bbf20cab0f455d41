// arbor-repl is an interactive demo for the arbor library. It keeps a
// single integer-keyed tree in memory and exposes its operations as
// commands.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"iter"
	"os"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"

	"github.com/phroun/arbor"
)

// REPL holds the state of the interactive session.
type REPL struct {
	tree   *arbor.Tree[int, string]
	faker  *gofakeit.Faker
	reader *bufio.Reader
}

func main() {
	app := &cli.App{
		Name:  "arbor-repl",
		Usage: "interactive binary search tree demo",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "seed for the 'random' command",
				Value: 0,
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cctx *cli.Context) error {
	fmt.Println("Arbor REPL - Binary Search Tree Demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := &REPL{
		tree:   arbor.New[int, string](),
		faker:  gofakeit.New(cctx.Int64("seed")),
		reader: bufio.NewReader(os.Stdin),
	}

	for {
		fmt.Print("arbor> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			return nil
		}
	}
}

// handleCommand executes a single command line. Returns false to exit.
func (r *REPL) handleCommand(input string) bool {
	fields := strings.Fields(input)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false
	case "help":
		r.printHelp()
	case "insert":
		r.cmdInsert(args)
	case "find":
		r.cmdFind(args)
	case "remove":
		r.cmdRemove(args)
	case "random":
		r.cmdRandom(args)
	case "inorder":
		r.printTraversal(r.tree.Inorder())
	case "preorder":
		r.printTraversal(r.tree.Preorder())
	case "postorder":
		r.printTraversal(r.tree.Postorder())
	case "min":
		if n := r.tree.Minimum(); n != nil {
			fmt.Println(n)
		} else {
			fmt.Println("tree is empty")
		}
	case "size":
		fmt.Println(r.tree.Size())
	case "valid":
		fmt.Println(r.tree.IsValid())
	case "print":
		fmt.Println(r.tree)
	case "cost":
		r.cmdCost(args)
	case "comparisons":
		fmt.Println(r.tree.Comparisons())
	case "reset":
		r.tree.ResetComparisons()
	default:
		fmt.Printf("unknown command %q, try 'help'\n", cmd)
	}
	return true
}

func (r *REPL) printHelp() {
	fmt.Println(`Commands:
  insert <key> [value]   insert a key (value defaults to a random word)
  find <key>             look up a key
  remove <key>           delete a key
  random <n>             insert n random keys
  inorder                list nodes in ascending key order
  preorder               list nodes in preorder
  postorder              list nodes in postorder
  min                    show the node with the smallest key
  size                   show the node count
  valid                  check the search-order invariant
  print                  show the whole tree inorder
  cost <key>             compare linear vs. tree search comparisons
  comparisons            show the comparison counter
  reset                  reset the comparison counter
  quit                   exit`)
}

func (r *REPL) cmdInsert(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: insert <key> [value]")
		return
	}
	key, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("bad key %q: must be an integer\n", args[0])
		return
	}
	value := r.faker.Word()
	if len(args) > 1 {
		value = strings.Join(args[1:], " ")
	}
	if err := r.tree.Insert(key, value); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("inserted %d -> %s (size %d)\n", key, value, r.tree.Size())
}

func (r *REPL) cmdFind(args []string) {
	key, ok := r.parseKey(args, "find")
	if !ok {
		return
	}
	n, err := r.tree.Find(key)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%v (depth %d, leaf %v)\n", n, n.Depth(), n.IsExternal())
}

func (r *REPL) cmdRemove(args []string) {
	key, ok := r.parseKey(args, "remove")
	if !ok {
		return
	}
	if err := r.tree.Remove(key); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("removed %d (size %d)\n", key, r.tree.Size())
}

func (r *REPL) cmdRandom(args []string) {
	count := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Println("usage: random <n>")
			return
		}
		count = n
	}
	inserted := 0
	for inserted < count {
		key := r.faker.Number(0, 9999)
		err := r.tree.Insert(key, r.faker.Word())
		if errors.Is(err, arbor.ErrDuplicateKey) {
			continue
		}
		if err != nil {
			fmt.Println(err)
			return
		}
		inserted++
	}
	fmt.Printf("inserted %d random keys (size %d)\n", inserted, r.tree.Size())
}

func (r *REPL) cmdCost(args []string) {
	key, ok := r.parseKey(args, "cost")
	if !ok {
		return
	}
	linear, tree, err := r.tree.SearchComparisons(key)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("linear scan: %d comparisons, tree descent: %d comparisons\n", linear, tree)
}

func (r *REPL) parseKey(args []string, cmd string) (int, bool) {
	if len(args) != 1 {
		fmt.Printf("usage: %s <key>\n", cmd)
		return 0, false
	}
	key, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("bad key %q: must be an integer\n", args[0])
		return 0, false
	}
	return key, true
}

func (r *REPL) printTraversal(seq iter.Seq[*arbor.Node[int, string]]) {
	count := 0
	for n := range seq {
		fmt.Println(n)
		count++
	}
	if count == 0 {
		fmt.Println("tree is empty")
	}
}
