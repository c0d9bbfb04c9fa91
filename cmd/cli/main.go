// cmd/cli/main.go
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	gosignal "os/signal"
	"strings"
	"syscall"

	"aurelia/internal/config"
	"aurelia/internal/entity"
	"aurelia/internal/logging"
	"aurelia/internal/session"
	"aurelia/internal/storage"
	"aurelia/internal/syncer"
	v "aurelia/internal/version"
)

func main() {
	userID := flag.String("user", "local", "user id owning the entity")
	planetSeed := flag.String("seed", "", "identity seed, first run only")
	flag.Parse()

	cfg := config.New()
	log := logging.Setup(cfg.LogLevel, cfg.LogPath)
	log.Info().Str("version", v.AppVersion).Msgf("starting %s", v.AppName)

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("storage open failed")
	}
	defer store.Close()

	sync := syncer.New(cfg.SyncURL, cfg.SyncSalt, log)

	sess := session.Open(store, sync, *userID,
		session.WithPlanetSeed(*planetSeed),
		session.WithLogger(log),
	)
	defer sess.Close()

	sig := make(chan os.Signal, 1)
	gosignal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Println()
		sess.Close()
		store.Close()
		os.Exit(0)
	}()

	fmt.Printf("%s. Write a line to journal, /help for commands.\n", v.AppName)
	if sess.RitualPending() {
		fmt.Println("(the daily question is open: /ritual yes|no)")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			if !runCommand(sess, line) {
				break
			}
			continue
		}

		snap, ok := sess.SubmitJournal(line)
		if !ok {
			fmt.Println("...nothing stirred.")
			continue
		}
		fmt.Printf("[%s] %s\n", snap.Presence.Mood, sess.Dialogue())
	}

	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("stdin read failed")
	}
	log.Info().Msg("exited cleanly")
}

// runCommand handles one slash command; false means quit.
func runCommand(sess *session.Session, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		return false

	case "/help":
		fmt.Println("/ritual yes|no  answer the daily question")
		fmt.Println("/state          show the current reading")
		fmt.Println("/dialogue       ask for a line")
		fmt.Println("/week           weekly summary, once per week")
		fmt.Println("/quit           leave")

	case "/ritual":
		if !sess.RitualPending() {
			fmt.Println("today's question is already answered.")
			return true
		}
		if len(fields) < 2 || (fields[1] != "yes" && fields[1] != "no") {
			fmt.Println("usage: /ritual yes|no")
			return true
		}
		snap, imprinted := sess.AnswerRitual(fields[1] == "yes")
		if imprinted {
			fmt.Println("something settled, permanently.")
		}
		fmt.Printf("[%s] trend %+.2f\n", snap.Presence.Mood, snap.DailyTrend)

	case "/state":
		printState(sess.Snapshot())

	case "/dialogue":
		fmt.Println(sess.Dialogue())

	case "/week":
		if summary, due := sess.WeeklySummary(); due {
			fmt.Println(summary)
		} else {
			fmt.Println("this week is already summarized.")
		}

	default:
		fmt.Println("unknown command, try /help")
	}
	return true
}

func printState(snap entity.Snapshot) {
	p := snap.Presence
	in := snap.InnerState
	fmt.Printf("mood       %s\n", p.Mood)
	fmt.Printf("presence   awareness %.2f  tension %.2f  entropy %.2f  curiosity %.2f\n",
		p.Awareness, p.Tension, p.Entropy, p.Curiosity)
	fmt.Printf("inner      trust %.2f  fear %.2f  stability %.2f  curiosity %.2f\n",
		in.Trust, in.Fear, in.Stability, in.Curiosity)
	fmt.Printf("daily      trend %+.2f  imprint %+.2f\n", snap.DailyTrend, snap.DailyImprint)
	fmt.Printf("geography  seedA %.4f  seedB %.4f\n", snap.Geography.SeedA, snap.Geography.SeedB)
	for _, e := range snap.RecentEpochs {
		fmt.Printf("epoch #%d   conflict %.2f  stability %.2f  strength %.2f\n",
			e.Seq, e.Conflict, e.Stability, e.Strength)
	}
}
