package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"CozyFishing/internal/catalog"
	"CozyFishing/internal/model"
	"CozyFishing/internal/notifier"
)

const helpText = `Commands:
  start              begin a run
  end                end the run
  cast <zone|depth>  cast into shallow/medium/deep/abyss or a depth 0-1
  reel               hook a bite (or dismiss)
  left / right       pull during a tension fight
  bait <name>        choose bait for the next cast
  buy <upgrade>      buy a permanent upgrade
  journal            show the collection
  shop               show upgrades
  status             show the current run`

var (
	verbs    = newMatcher()
	zones    = newMatcher()
	baits    = newMatcher()
	upgrades = newMatcher()
)

func init() {
	verbs.add("start", "begin", "new run")
	verbs.add("end", "stop", "quit")
	verbs.add("cast", "throw")
	verbs.add("reel", "hook", "click", "catch")
	verbs.add("left", "l")
	verbs.add("right", "r")
	verbs.add("bait", "use")
	verbs.add("buy", "purchase")
	verbs.add("journal", "collection")
	verbs.add("shop", "store", "upgrades")
	verbs.add("status", "info")
	verbs.add("help", "?")

	for _, z := range catalog.Zones {
		zones.add(string(z.ID), z.Name)
	}
	for _, b := range catalog.Baits {
		baits.add(string(b.ID), b.Name)
	}
	for _, u := range catalog.Upgrades {
		upgrades.add(string(u.ID), u.Name)
	}
}

// HandleCommand processes a text command and returns a reply. Commands that
// only produce events reply with "".
func (c *Controller) HandleCommand(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return helpText
	}
	verb, ok := verbs.resolve(fields[0])
	if !ok {
		return fmt.Sprintf("Unknown command %q. Type 'help'.", fields[0])
	}
	arg := strings.Join(fields[1:], " ")

	switch verb {
	case "start":
		if !c.StartRun() {
			return "A run is already in progress."
		}
	case "end":
		if _, ok := c.EndRun(); !ok {
			return "No run active."
		}
	case "cast":
		return c.castCommand(arg)
	case "reel":
		c.Action()
	case "left":
		c.Pull(model.Left)
	case "right":
		c.Pull(model.Right)
	case "bait":
		id, ok := baits.resolve(arg)
		if !ok {
			return fmt.Sprintf("Unknown bait %q.", arg)
		}
		if !c.SelectBait(model.BaitID(id)) {
			return "You can only switch to bait you have, between casts."
		}
		b, _ := catalog.BaitByID(model.BaitID(id))
		return fmt.Sprintf("Using %s.", b.Name)
	case "buy":
		id, ok := upgrades.resolve(arg)
		if !ok {
			return fmt.Sprintf("Unknown upgrade %q.", arg)
		}
		if _, ok := c.Buy(model.UpgradeID(id)); !ok {
			u, _ := catalog.UpgradeByID(model.UpgradeID(id))
			if c.store.UpgradeLevel(u.ID) >= u.MaxLevel {
				return fmt.Sprintf("%s is already maxed.", u.Name)
			}
			return fmt.Sprintf("%s costs %d coins.", u.Name, u.Price)
		}
	case "journal":
		return notifier.FormatJournal(c.Journal())
	case "shop":
		return notifier.FormatShop(c.Shop(), c.store.Coins())
	case "status":
		return notifier.FormatStatus(c.Status(), c.store.Coins())
	default:
		return helpText
	}
	return ""
}

func (c *Controller) castCommand(arg string) string {
	if arg == "" {
		return "Cast where? Try 'cast shallow' or 'cast 0.5'."
	}
	var zone model.ZoneID
	depth, err := strconv.ParseFloat(arg, 64)
	if err == nil {
		if math.IsNaN(depth) || depth < 0 || depth > 1 {
			return "Depth must be between 0 and 1."
		}
		zone = catalog.ZoneForDepth(depth)
	} else {
		id, ok := zones.resolve(arg)
		if !ok {
			return fmt.Sprintf("Unknown zone %q.", arg)
		}
		zone = model.ZoneID(id)
	}

	var reply string
	c.Do(func() {
		if c.eng.AttemptCast(zone) {
			return
		}
		reply = c.castFailure(zone)
	})
	return reply
}

// castFailure explains a rejected cast. Runs on the loop goroutine.
func (c *Controller) castFailure(zone model.ZoneID) string {
	run := c.eng.Run()
	switch {
	case run == nil:
		return "No run active. Type 'start'."
	case c.eng.State() != model.StateIdle:
		return "Your line is already out."
	case !c.store.IsUnlocked(zone) && !run.SelectedHas(model.EffectZoneBypass):
		z, _ := catalog.ZoneByID(zone)
		return fmt.Sprintf("The %s zone is locked.", z.Name)
	default:
		return "You have no bait left."
	}
}

// Dispatch implements notifier.Dispatcher.
func (c *Controller) Dispatch(op notifier.Op) string {
	switch op.Op {
	case "start_run":
		return c.HandleCommand("start")
	case "end_run":
		return c.HandleCommand("end")
	case "cast":
		if op.Depth != nil {
			return c.castCommand(strconv.FormatFloat(*op.Depth, 'f', -1, 64))
		}
		return c.castCommand(op.Zone)
	case "action":
		c.Action()
		return ""
	case "tension":
		dir := model.Direction(strings.ToLower(op.Dir))
		if !dir.Valid() {
			return fmt.Sprintf("Unknown direction %q.", op.Dir)
		}
		c.Pull(dir)
		return ""
	case "select_bait":
		return c.HandleCommand("bait " + op.Bait)
	case "buy":
		return c.HandleCommand("buy " + op.Upgrade)
	case "command":
		return c.HandleCommand(op.Text)
	default:
		return fmt.Sprintf("Unknown op %q.", op.Op)
	}
}
