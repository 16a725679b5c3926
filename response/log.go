/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package response

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type loggerBox struct{ l logrus.FieldLogger }

var logger atomic.Pointer[loggerBox]

// SetLogger sets the logger used to report degraded responses and write
// failures. A nil logger restores the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		logger.Store(nil)
		return
	}
	logger.Store(&loggerBox{l: l})
}

func log() logrus.FieldLogger {
	if b := logger.Load(); b != nil {
		return b.l
	}
	return logrus.StandardLogger()
}
