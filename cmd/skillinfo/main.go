package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/milk9111/fightcore/animation"
	"github.com/milk9111/fightcore/command"
	"github.com/milk9111/fightcore/ecs/component"
	"github.com/milk9111/fightcore/prefabs"
)

func main() {
	character := flag.String("character", "fighter.yaml", "character prefab under prefabs/")
	flag.Parse()

	lib := animation.NewLibrary()
	ch, err := prefabs.LoadCharacter(*character, lib, prefabs.DefaultTolerance())
	if err != nil {
		log.Fatal(err)
	}

	commands := map[component.AnimationKey][]command.ID{}
	for id, key := range ch.Skills.Skills {
		commands[key] = append(commands[key], id)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "clip\tframes\tloop\tattack frames\tcommands\n")
	for _, key := range lib.Keys() {
		clip, _ := lib.Clip(key)
		fmt.Fprintf(tw, "%s\t%d\t%v\t%s\t%s\n",
			key, clip.Frames, clip.Loop, formatRanges(animation.AttackRanges(clip)), formatIDs(commands[key]))
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}
}

func formatRanges(ranges [][2]int) string {
	if len(ranges) == 0 {
		return "-"
	}
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		if r[0] == r[1] {
			parts[i] = fmt.Sprint(r[0])
		} else {
			parts[i] = fmt.Sprintf("%d-%d", r[0], r[1])
		}
	}
	return strings.Join(parts, ",")
}

// formatIDs lists command names by rank.
func formatIDs(ids []command.ID) string {
	if len(ids) == 0 {
		return "-"
	}
	slices.Sort(ids)
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return strings.Join(names, " ")
}
