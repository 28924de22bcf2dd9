package bst_test

import (
	"fmt"

	"github.com/amp-labs/amp-dsa/bst"
)

func ExampleTree() {
	tree := bst.New(50, 30, 70, 20, 40, 60, 80)

	fmt.Println(tree)
	fmt.Println("height:", tree.Height(), "valid:", tree.IsValid())
	fmt.Println("min:", tree.Minimum(), "max:", tree.Maximum())

	tree.Remove(30)
	fmt.Println(tree.Inorder())

	// Output:
	// BST (inorder): [20, 30, 40, 50, 60, 70, 80]
	// height: 2 valid: true
	// min: Some(20) max: Some(80)
	// [20 40 50 60 70 80]
}

func ExampleTree_Walk() {
	tree := bst.New(50, 30, 70, 20, 40, 60, 80)

	for _, order := range bst.Orders() {
		fmt.Print(order, ":")

		for v := range tree.Walk(order) {
			fmt.Print(" ", v)
		}

		fmt.Println()
	}

	// Output:
	// inorder: 20 30 40 50 60 70 80
	// preorder: 50 30 20 40 70 60 80
	// postorder: 20 40 30 60 80 70 50
	// level-order: 50 30 70 20 40 60 80
}
