package rholisp

import "sync"

// symbolTable interns symbols by text so that two occurrences of the
// same name always share one *Symbol, which is what lets Environment
// compare bindings by pointer rather than by string. The original C
// implementation keeps exactly one such table for the life of the
// process; everything else the design notes ask to be pulled off of
// global state into *Interpreter, but the symbol table is left
// process-global on purpose; text in rholisp code that looks up, say,
// "car" exists to be the same car in every file and every REPL line
// read into the same binary, independent of which *Interpreter reads
// it.
var symbolTable = struct {
	mu      sync.Mutex
	symbols map[string]*Symbol
}{symbols: make(map[string]*Symbol)}

// internLiteral returns the canonical *Symbol for text, allocating it
// on first use. It does not increment the symbol's refcount; wrapping
// the result in a Value via SymV adds the reference that Value holds.
func internLiteral(text string) *Symbol {
	symbolTable.mu.Lock()
	defer symbolTable.mu.Unlock()
	if s, ok := symbolTable.symbols[text]; ok {
		return s
	}
	s := &Symbol{Text: text, refcount: 0, id: allocID()}
	symbolTable.symbols[text] = s
	return s
}
