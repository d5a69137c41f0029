//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/tiagoavila/pte/commander"
	"github.com/tiagoavila/pte/editor"
	"github.com/tiagoavila/pte/screen"
	pte "github.com/tiagoavila/pte/types"
)

const temporaryBufferCapacity = 64

const singleLineText = "Hello World"

const multiLineText = "Hello World\n" +
	"This is a text editor\n" +
	"It supports multiple lines\n" +
	"And basic editing features"

func main() {

	text := singleLineText
	var script string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--single":
			text = singleLineText
		case "--multi":
			text = multiLineText
		case "--eval": // eval expression and exit
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No expression specified for --eval option")
				return
			}
		default:
			// If a file was specified on the command line, read it.
			contents, err := os.ReadFile(argi)
			if err != nil {
				text = "file not found"
			} else {
				text = string(contents)
			}
		}
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor(text, temporaryBufferCapacity)

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	if script != "" {
		// Run a lisp expression and exit.
		fmt.Println(c.ParseEval(script))
		return
	}

	// Create a screen to manage display.
	s := screen.NewScreen()
	if s == nil {
		return
	}
	defer s.Close()

	// Open a log file.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.ptelog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	// Run the main event loop.
	for c.GetMode() != pte.ModeQuit {
		s.Render(e, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
}
