package main

func main() {
	runSim()
}
