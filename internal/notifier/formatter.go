package notifier

import (
	"fmt"
	"strings"

	"CozyFishing/internal/catalog"
	"CozyFishing/internal/engine"
	"CozyFishing/internal/model"

	"github.com/dustin/go-humanize"
)

func coins(n int) string {
	return humanize.Comma(int64(n))
}

func fishName(f *model.FishDefinition) string {
	if f == nil {
		return "nothing"
	}
	return f.Name
}

func baitName(id model.BaitID) string {
	if b, ok := catalog.BaitByID(id); ok {
		return b.Name
	}
	return string(id)
}

func zoneName(id model.ZoneID) string {
	if z, ok := catalog.ZoneByID(id); ok {
		return z.Name
	}
	return string(id)
}

// FormatEvent renders an engine event as a single chat line.
func FormatEvent(ev model.Event) string {
	switch ev.Type {
	case model.EventRunStarted:
		return "🎣 New run started."
	case model.EventCastStarted:
		return fmt.Sprintf("Cast into the %s with %s.", zoneName(ev.Zone), baitName(ev.Bait))
	case model.EventBiteOpened:
		return fmt.Sprintf("❗ Bite! Reel within %.0fms.", ev.Window)
	case model.EventTensionStarted:
		return fmt.Sprintf("Hooked something strong. Pull %s!", ev.Direction)
	case model.EventTensionWon:
		return "The line holds."
	case model.EventFishEscaped:
		if ev.Reason == model.EscapeTension {
			return "The line snapped. It got away."
		}
		return "Too slow. It got away."
	case model.EventFishCaught:
		if ev.Fish == nil {
			return "Caught something."
		}
		return fmt.Sprintf("🐟 Caught a %s (%s) for %s coins.", ev.Fish.Name, ev.Fish.Rarity, coins(ev.Value))
	case model.EventBaitDropped:
		return fmt.Sprintf("Found %s.", baitName(ev.Bait))
	case model.EventMilestoneReached:
		return fmt.Sprintf("⭐ %s milestone %d reached.", fishName(ev.Fish), ev.Tier)
	case model.EventMasteryReached:
		return fmt.Sprintf("⭐ %s mastery level %d.", zoneName(ev.Zone), ev.Level)
	case model.EventUpgradePurchased:
		name := string(ev.Upgrade)
		if u, ok := catalog.UpgradeByID(ev.Upgrade); ok {
			name = u.Name
		}
		return fmt.Sprintf("Bought %s (level %d) for %s coins.", name, ev.Level, coins(ev.Price))
	case model.EventRunEnded:
		if ev.Summary == nil {
			return "Run over."
		}
		return FormatSummary(ev.Summary)
	default:
		return string(ev.Type)
	}
}

// FormatSummary renders the end-of-run report.
func FormatSummary(sum *model.RunSummary) string {
	var b strings.Builder
	b.WriteString("🏁 Run over\n")
	b.WriteString(fmt.Sprintf("Fish caught: %d\n", sum.FishCaught))
	b.WriteString(fmt.Sprintf("Coins earned: %s\n", coins(sum.CoinsEarned)))
	if sum.BestFish != "" {
		name := string(sum.BestFish)
		if f, ok := catalog.FishByID(sum.BestFish); ok {
			name = f.Name
		}
		b.WriteString(fmt.Sprintf("Best fish: %s\n", name))
	}
	b.WriteString(fmt.Sprintf("Bait left: %d", sum.BaitLeft))
	return b.String()
}

// FormatJournal renders the collection journal.
func FormatJournal(entries []model.JournalEntry) string {
	var b strings.Builder
	caught := 0
	for _, e := range entries {
		if e.Count > 0 {
			caught++
		}
	}
	b.WriteString(fmt.Sprintf("📖 Journal %d/%d\n", caught, len(entries)))
	for _, e := range entries {
		if e.Count == 0 {
			b.WriteString(fmt.Sprintf("  ??? (%s)\n", e.Rarity))
			continue
		}
		zones := make([]string, len(e.Zones))
		for i, z := range e.Zones {
			zones[i] = zoneName(z)
		}
		line := fmt.Sprintf("  %s (%s) x%d, %s", e.Name, e.Rarity, e.Count, strings.Join(zones, "/"))
		if e.Tier > 0 {
			line += fmt.Sprintf(", +%.0f%% value", e.Bonus*100)
		}
		if e.NextThreshold > 0 {
			line += fmt.Sprintf(", next at %d", e.NextThreshold)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatShop renders the upgrade shop with the player's balance.
func FormatShop(entries []model.ShopEntry, balance int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🛒 Shop (%s coins)\n", coins(balance)))
	for _, e := range entries {
		var price string
		switch {
		case e.Maxed:
			price = "MAX"
		case e.Affordable:
			price = coins(e.Price)
		default:
			price = coins(e.Price) + " (need more)"
		}
		b.WriteString(fmt.Sprintf("  %s [%s] %d/%d: %s, %s\n", e.Name, e.Upgrade, e.Level, e.MaxLevel, e.Description, price))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatStatus renders the engine status for the status command.
func FormatStatus(st engine.Status, balance int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Coins: %s\n", coins(balance)))
	if !st.RunActive {
		b.WriteString("No run active. Type 'start'.")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("State: %s\n", st.State))
	b.WriteString(fmt.Sprintf("Caught %d, earned %s\n", st.Caught, coins(st.Earned)))
	baits := make([]string, 0, len(st.Baits))
	for _, o := range st.Baits {
		mark := ""
		if o.Bait == st.Selected {
			mark = "*"
		}
		baits = append(baits, fmt.Sprintf("%s%s x%d", mark, o.Name, o.Count))
	}
	b.WriteString("Bait: " + strings.Join(baits, ", "))
	if st.Tension.Active {
		b.WriteString(fmt.Sprintf("\nLine %.0f%%, pull %s", st.Tension.Health, st.Tension.Required))
	}
	return b.String()
}
