// This file is part of ntscvhs.
//
// ntscvhs is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ntscvhs is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ntscvhs.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/ntscvhs/logger"
)

// Address of the statistics server.
const Address = "localhost:12600"

// path of the charts page on the server
const chartsPath = "/debug/statsview"

// Launch starts the statistics server in the background. The charts show
// heap use, GC pauses and goroutine counts while images are being processed,
// which is most useful over a long ANIMATE run. The URL of the charts is
// written to output.
func Launch(output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()
	go mgr.Start()

	logger.Logf(logger.Allow, "statsview", "serving on %s", Address)
	fmt.Fprintf(output, "runtime statistics at http://%s%s\n", Address, chartsPath)
}

// Available returns true because this build includes the statistics server.
func Available() bool {
	return true
}
