// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/ros2ci/cmd/ros2ci/cmd"
)

func main() {
	cmd.Execute()
}
