package tree

// Visitor receives callbacks from Walk, twice for every node.
type Visitor[T comparable] interface {
	// Enter is called before the children of node are visited. It returns
	// the depth to pass to the children and whether to descend into them.
	Enter(node *Node[T], depth int) (childDepth int, descend bool)
	// Leave is called after all children of node have been visited, or
	// directly after Enter if Enter declined to descend.
	Leave(node *Node[T], depth int)
}

// VisitorFuncs adapts a pair of functions to interface Visitor.
// A nil EnterFunc descends into every node at depth+1, a nil LeaveFunc does nothing.
type VisitorFuncs[T comparable] struct {
	EnterFunc func(node *Node[T], depth int) (int, bool)
	LeaveFunc func(node *Node[T], depth int)
}

// Enter is part of interface Visitor.
func (vf VisitorFuncs[T]) Enter(node *Node[T], depth int) (int, bool) {
	if vf.EnterFunc == nil {
		return depth + 1, true
	}
	return vf.EnterFunc(node, depth)
}

// Leave is part of interface Visitor.
func (vf VisitorFuncs[T]) Leave(node *Node[T], depth int) {
	if vf.LeaveFunc != nil {
		vf.LeaveFunc(node, depth)
	}
}

var _ Visitor[int] = VisitorFuncs[int]{}

type frame[T comparable] struct {
	node       *Node[T]
	depth      int
	childDepth int
	children   []*Node[T]
	next       int
}

// Walk traverses the tree below root depth-first, children in document
// order, calling v.Enter when a node is reached and v.Leave when it is done.
// root is entered with the given depth.
//
// Walk keeps its own stack on the heap, i.e. the nesting depth of a tree is not
// limited by the goroutine stack. It returns the number of nodes visited.
func Walk[T comparable](root *Node[T], depth int, v Visitor[T]) int {
	if root == nil || v == nil {
		return 0
	}
	stack := make([]frame[T], 0, 32)
	push := func(node *Node[T], d int) {
		cd, descend := v.Enter(node, d)
		f := frame[T]{node: node, depth: d, childDepth: cd}
		if descend {
			f.children = node.Children()
		}
		stack = append(stack, f)
	}
	count := 1
	push(root, depth)
	for len(stack) > 0 {
		top := len(stack) - 1
		if stack[top].next < len(stack[top].children) {
			ch := stack[top].children[stack[top].next]
			stack[top].next++
			if ch != nil {
				count++
				push(ch, stack[top].childDepth)
			}
			continue
		}
		v.Leave(stack[top].node, stack[top].depth)
		stack = stack[:top]
	}
	tracer().Debugf("tree walk visited %d nodes", count)
	return count
}
