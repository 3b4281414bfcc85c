package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/auyeungtsun/leftist-tree/pkg/leftist"
)

func main() {
	fmt.Println("Leftist Tree Demo - Mergeable Priority Queue")
	fmt.Println("============================================")

	// Demo 1: Insertions
	fmt.Println("\n1. Insertions:")
	fmt.Println("--------------")

	h := leftist.NewHeap()
	keys := []int{10, 5, 20, 3, 15, 2}
	fmt.Printf("Inserting elements: %v\n", keys)
	for _, key := range keys {
		h.Insert(key)
	}

	fmt.Println("\nTree structure after insertions:")
	if err := h.PrintTree(os.Stdout); err != nil {
		log.Fatalf("Failed to print tree: %v", err)
	}

	min, err := h.GetMin()
	if err != nil {
		log.Fatalf("Failed to get min: %v", err)
	}
	fmt.Printf("\nMin element: %d\n", min)

	// Demo 2: Extraction
	fmt.Println("\n2. Extraction:")
	fmt.Println("--------------")

	for !h.IsEmpty() {
		key, err := h.ExtractMin()
		if err != nil {
			log.Fatalf("Failed to extract min: %v", err)
		}
		fmt.Printf("Extracted: %d (%d elements left)\n", key, h.Size())

		if !h.IsEmpty() {
			if err := h.PrintTree(os.Stdout); err != nil {
				log.Fatalf("Failed to print tree: %v", err)
			}
		}
	}
	fmt.Println("Tree is now empty.")

	// Demo 3: Merging two heaps
	fmt.Println("\n3. Merging Two Heaps:")
	fmt.Println("---------------------")

	h1 := leftist.NewHeap()
	for _, key := range []int{10, 20, 5} {
		h1.Insert(key)
	}
	fmt.Println("Heap 1:")
	if err := h1.PrintTree(os.Stdout); err != nil {
		log.Fatalf("Failed to print tree: %v", err)
	}

	h2 := leftist.NewHeap()
	for _, key := range []int{15, 8, 25} {
		h2.Insert(key)
	}
	fmt.Println("\nHeap 2:")
	if err := h2.PrintTree(os.Stdout); err != nil {
		log.Fatalf("Failed to print tree: %v", err)
	}

	h1.MergeWith(h2)
	fmt.Println("\nHeap 1 after merging with heap 2:")
	if err := h1.PrintTree(os.Stdout); err != nil {
		log.Fatalf("Failed to print tree: %v", err)
	}

	fmt.Println("\nHeap 2 after being merged (should be empty):")
	if err := h2.PrintTree(os.Stdout); err != nil {
		log.Fatalf("Failed to print tree: %v", err)
	}

	fmt.Print("\nDraining merged heap: ")
	iter := h1.Iterator()
	for iter.Next() {
		fmt.Printf("%d ", iter.Entry())
	}
	iter.Close()
	fmt.Println()

	// Demo 4: Performance test
	fmt.Println("\n4. Performance Test:")
	fmt.Println("-------------------")

	numOperations := 100000
	perf := leftist.NewHeap()

	fmt.Printf("Performing %d insert operations...\n", numOperations)
	start := time.Now()
	for i := 0; i < numOperations; i++ {
		perf.Insert((i * 7919) % numOperations)
	}
	duration := time.Since(start)
	fmt.Printf("Completed %d inserts in %v (avg: %v per operation)\n",
		numOperations, duration, duration/time.Duration(numOperations))

	fmt.Printf("Draining %d elements...\n", numOperations)
	start = time.Now()
	prev, _ := perf.GetMin()
	for !perf.IsEmpty() {
		key, err := perf.ExtractMin()
		if err != nil {
			log.Fatalf("Failed to extract min: %v", err)
		}
		if key < prev {
			log.Fatalf("Extraction out of order: %d after %d", key, prev)
		}
		prev = key
	}
	duration = time.Since(start)
	fmt.Printf("Completed %d extracts in %v (avg: %v per operation)\n",
		numOperations, duration, duration/time.Duration(numOperations))

	fmt.Println("\nDemo completed successfully!")
}
