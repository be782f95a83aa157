package main

import "github.com/Nikulkumar-Dabhi/Habit-Tracker/cmd"

func main() {
	cmd.Execute()
}
