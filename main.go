// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/Karanja-eng/goframe/cmd"

func main() {
	cmd.Execute()
}
